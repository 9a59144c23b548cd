package complaint

type CreateComplaintRequest struct {
	Category    string `json:"category" validate:"required,oneof=water_supply roads electricity sanitation streetlight other"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Ward        string `json:"ward" validate:"required,max=64"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=acknowledged in_progress resolved rejected"`
	Remark string `json:"remark,omitempty" validate:"max=500"`
}

// FeedItem is one entry of the community activity feed. It intentionally
// omits the filer's identity.
type FeedItem struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Ward      string `json:"ward"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
