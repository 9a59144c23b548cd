package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartconnect/internal/database"
	"smartconnect/internal/domain/auth"
	"smartconnect/internal/domain/complaint"
	"smartconnect/internal/domain/notification"
	"smartconnect/internal/domain/rewards"
)

func main() {
	db, err := database.Connect("smartconnect.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&auth.User{},
		&complaint.Complaint{},
		&notification.Notification{},
		&rewards.RewardAccount{},
		&rewards.RewardTransaction{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reward_transactions")
	db.Exec("DELETE FROM reward_accounts")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM complaints")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	officialHash, _ := bcrypt.GenerateFromPassword([]byte("official123"), bcrypt.DefaultCost)
	official := auth.User{
		Email:        "officer@raipur.gov.in",
		PasswordHash: string(officialHash),
		Role:         auth.RoleOfficial,
		Name:         "Ward Officer",
		Ward:         "Ward 12",
	}
	db.Create(&official)
	log.Println("Official created: officer@raipur.gov.in / official123")

	citizens := []auth.User{}
	citizenEmails := []string{"asha@mail.in", "rahul@gmail.com", "priya@yahoo.in"}
	for i, email := range citizenEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("citizen123"), bcrypt.DefaultCost)
		citizen := auth.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         auth.RoleCitizen,
			Name:         fmt.Sprintf("Citizen %d", i+1),
			Phone:        fmt.Sprintf("+91 98765 432%02d", i+10),
			Ward:         fmt.Sprintf("Ward %d", 10+i),
		}
		db.Create(&citizen)
		citizens = append(citizens, citizen)
	}
	demo := citizens[0]

	// ================== COMPLAINTS ==================
	log.Println("Creating complaints...")
	complaints := []complaint.Complaint{
		{
			CitizenID:   demo.ID,
			Category:    complaint.CategoryWaterSupply,
			Title:       "No water supply since Monday",
			Description: "Entire lane has had no municipal water for three days.",
			Ward:        "Ward 10",
			Status:      complaint.StatusInProgress,
		},
		{
			CitizenID:   demo.ID,
			Category:    complaint.CategoryStreetlight,
			Title:       "Street light broken near park gate",
			Description: "Pole number 44 has been dark for a week.",
			Ward:        "Ward 10",
			Status:      complaint.StatusResolved,
		},
		{
			CitizenID:   citizens[1].ID,
			Category:    complaint.CategoryRoads,
			Title:       "Potholes on station road",
			Description: "Two-wheelers are skidding after the rains.",
			Ward:        "Ward 11",
			Status:      complaint.StatusSubmitted,
		},
		{
			CitizenID:   citizens[2].ID,
			Category:    complaint.CategorySanitation,
			Title:       "Garbage not collected",
			Description: "Collection van skipped the colony twice this week.",
			Ward:        "Ward 12",
			Status:      complaint.StatusAcknowledged,
		},
	}
	for i := range complaints {
		db.Create(&complaints[i])
	}

	// ================== NOTIFICATIONS ==================
	// Demo inbox: four entries, two unread, one urgent.
	log.Println("Creating notifications...")
	waterID := fmt.Sprintf("%d", complaints[0].ID)
	lightID := fmt.Sprintf("%d", complaints[1].ID)
	readAt := time.Now().Add(-20 * time.Hour)

	seedNotifs := []notification.Notification{
		{
			UserID:    demo.ID,
			Type:      notification.TypeStatusChange,
			Priority:  notification.PriorityHigh,
			Title:     "Complaint status updated",
			Message:   "Your water supply complaint is now in progress.",
			RelatedID: &waterID,
			Actions: notification.Actions{
				{Label: "View Complaint", ID: "view_complaint", Variant: "primary"},
				{Label: "Contact Team", ID: "contact_team", Variant: "secondary"},
			},
			CreatedAt: time.Now().Add(-2 * time.Hour),
		},
		{
			UserID:    demo.ID,
			Type:      notification.TypeEmergency,
			Priority:  notification.PriorityUrgent,
			Title:     "Water supply disruption",
			Message:   "Scheduled maintenance will cut supply in Ward 10 tomorrow 9am-2pm.",
			CreatedAt: time.Now().Add(-5 * time.Hour),
		},
		{
			UserID:    demo.ID,
			Type:      notification.TypeComplaintUpdate,
			Priority:  notification.PriorityMedium,
			Title:     "Complaint resolved",
			Message:   "The street light near the park gate has been repaired.",
			RelatedID: &lightID,
			IsRead:    true,
			ReadAt:    &readAt,
			Actions: notification.Actions{
				{Label: "View Complaint", ID: "view_complaint", Variant: "primary"},
			},
			CreatedAt: time.Now().Add(-26 * time.Hour),
		},
		{
			UserID:    demo.ID,
			Type:      notification.TypeCommunityActivity,
			Priority:  notification.PriorityLow,
			Title:     "New complaint in your ward",
			Message:   "A neighbour reported potholes on station road.",
			IsRead:    true,
			ReadAt:    &readAt,
			CreatedAt: time.Now().Add(-48 * time.Hour),
		},
	}
	for i := range seedNotifs {
		db.Create(&seedNotifs[i])
	}

	// ================== REWARDS ==================
	log.Println("Creating reward accounts...")
	for i, c := range citizens {
		account := rewards.RewardAccount{UserID: c.ID, Balance: int64(10 * (i + 1))}
		db.Create(&account)
		db.Create(&rewards.RewardTransaction{
			AccountID: account.ID,
			Points:    account.Balance,
			Type:      rewards.TransactionTypeEarn,
			Reason:    "complaint_filed",
		})
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Official: officer@raipur.gov.in / official123")
	log.Println("Citizens: asha@mail.in, rahul@gmail.com, priya@yahoo.in / citizen123")
}
