// internal/models/inquiry.go
package models

type Timeline string

const (
	Timeline1To2Weeks   Timeline = "1-2-weeks"
	Timeline1Month      Timeline = "1-month"
	Timeline2To3Months  Timeline = "2-3-months"
	Timeline3To6Months  Timeline = "3-6-months"
	Timeline6MonthsPlus Timeline = "6-months-plus"
)

var Timelines = []Timeline{Timeline1To2Weeks, Timeline1Month, Timeline2To3Months, Timeline3To6Months, Timeline6MonthsPlus}

type Budget string

const (
	BudgetUnder5k  Budget = "under-5k"
	Budget5kTo10k  Budget = "5k-10k"
	Budget10kTo20k Budget = "10k-20k"
	Budget20kTo50k Budget = "20k-50k"
	Budget50kPlus  Budget = "50k-plus"
)

var Budgets = []Budget{BudgetUnder5k, Budget5kTo10k, Budget10kTo20k, Budget20kTo50k, Budget50kPlus}

type Autonomy string

const (
	AutonomyLow    Autonomy = "low"
	AutonomyMedium Autonomy = "medium"
	AutonomyHigh   Autonomy = "high"
	AutonomyFull   Autonomy = "full"
)

// Autonomies is ordered from least to most autonomy.
var Autonomies = []Autonomy{AutonomyLow, AutonomyMedium, AutonomyHigh, AutonomyFull}

type MeetingFrequency string

const (
	MeetingDaily    MeetingFrequency = "daily"
	MeetingWeekly   MeetingFrequency = "weekly"
	MeetingBiweekly MeetingFrequency = "biweekly"
	MeetingMonthly  MeetingFrequency = "monthly"
	MeetingAsync    MeetingFrequency = "async"
)

var MeetingFrequencies = []MeetingFrequency{MeetingDaily, MeetingWeekly, MeetingBiweekly, MeetingMonthly, MeetingAsync}

type SharingPermission string

const (
	SharingPublic     SharingPermission = "public"
	SharingAnonymized SharingPermission = "anonymized"
	SharingPrivate    SharingPermission = "private"
)

var SharingPermissions = []SharingPermission{SharingPublic, SharingAnonymized, SharingPrivate}

// Submission is one validated project inquiry. Only the scoring schema
// constructs it from untrusted input.
type Submission struct {
	CompanyName           string            `json:"companyName"`
	Website               string            `json:"website"`
	ContactName           string            `json:"contactName"`
	ContactEmail          string            `json:"contactEmail"`
	ContactRole           string            `json:"contactRole"`
	ProjectTitle          string            `json:"projectTitle"`
	ProjectDescription    string            `json:"projectDescription"`
	Stack                 []string          `json:"stack"`
	Timeline              Timeline          `json:"timeline"`
	Budget                Budget            `json:"budget"`
	Autonomy              Autonomy          `json:"autonomy"`
	MeetingFrequency      MeetingFrequency  `json:"meetingFrequency"`
	AllowsExperimentation bool              `json:"allowsExperimentation"`
	SharingPermission     SharingPermission `json:"sharingPermission"`
	RequiresCompliance    bool              `json:"requiresCompliance"`
	ComplianceStandards   []string          `json:"complianceStandards,omitempty"`
}
