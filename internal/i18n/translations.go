package i18n

// UI strings for the civic portal, keyed by screen.key.
var translations = map[string]map[Lang]string{
	"nav.home": {
		LangEnglish: "Home",
		LangHindi:   "होम",
	},
	"nav.complaints": {
		LangEnglish: "My Complaints",
		LangHindi:   "मेरी शिकायतें",
	},
	"nav.community": {
		LangEnglish: "Community",
		LangHindi:   "समुदाय",
	},
	"nav.dashboard": {
		LangEnglish: "Dashboard",
		LangHindi:   "डैशबोर्ड",
	},
	"nav.rewards": {
		LangEnglish: "Rewards",
		LangHindi:   "पुरस्कार",
	},
	"nav.officials": {
		LangEnglish: "Officials Dashboard",
		LangHindi:   "अधिकारी डैशबोर्ड",
	},
	"notifications.title": {
		LangEnglish: "Notifications",
		LangHindi:   "सूचनाएं",
	},
	"notifications.badge": {
		LangEnglish: "%d new",
		LangHindi:   "%d नई",
	},
	"notifications.mark_all_read": {
		LangEnglish: "Mark all read",
		LangHindi:   "सभी को पढ़ा हुआ चिह्नित करें",
	},
	"notifications.empty": {
		LangEnglish: "No notifications",
		LangHindi:   "कोई सूचना नहीं",
	},
	"notifications.filter.all": {
		LangEnglish: "All",
		LangHindi:   "सभी",
	},
	"notifications.filter.unread": {
		LangEnglish: "Unread",
		LangHindi:   "अपठित",
	},
	"notifications.filter.urgent": {
		LangEnglish: "Urgent",
		LangHindi:   "अत्यावश्यक",
	},
	"notifications.load_failed": {
		LangEnglish: "Could not load notifications",
		LangHindi:   "सूचनाएं लोड नहीं हो सकीं",
	},
	"complaints.file": {
		LangEnglish: "File a Complaint",
		LangHindi:   "शिकायत दर्ज करें",
	},
	"complaints.status.submitted": {
		LangEnglish: "Submitted",
		LangHindi:   "प्रस्तुत",
	},
	"complaints.status.acknowledged": {
		LangEnglish: "Acknowledged",
		LangHindi:   "स्वीकृत",
	},
	"complaints.status.in_progress": {
		LangEnglish: "In Progress",
		LangHindi:   "प्रगति पर",
	},
	"complaints.status.resolved": {
		LangEnglish: "Resolved",
		LangHindi:   "समाधान हो गया",
	},
	"complaints.status.rejected": {
		LangEnglish: "Rejected",
		LangHindi:   "अस्वीकृत",
	},
	"rewards.balance": {
		LangEnglish: "You have %d points",
		LangHindi:   "आपके पास %d अंक हैं",
	},
}
