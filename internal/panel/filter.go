package panel

// Category selects a client-side filter over the held snapshot.
// Beyond the three built-ins, any literal notification type value
// ("complaint_update", "emergency", ...) is a valid category.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryUnread Category = "unread"
	CategoryUrgent Category = "urgent"
)

// Filter applies a category to the current snapshot. Pure and synchronous:
// it never triggers a fetch and preserves fetch order.
func (p *Panel) Filter(cat Category) []Notification {
	return FilterNotifications(p.Snapshot(), cat)
}

// FilterNotifications filters items by category. "urgent" matches on
// priority; every other non-builtin category matches on type.
func FilterNotifications(items []Notification, cat Category) []Notification {
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		switch cat {
		case CategoryAll, "":
			out = append(out, n)
		case CategoryUnread:
			if !n.IsRead {
				out = append(out, n)
			}
		case CategoryUrgent:
			if n.Priority == "urgent" {
				out = append(out, n)
			}
		default:
			if n.Type == string(cat) {
				out = append(out, n)
			}
		}
	}
	return out
}
