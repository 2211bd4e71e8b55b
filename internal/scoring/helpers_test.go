package scoring

import "inquiry-workers/internal/models"

const longDescription = "We need an immersive product launch site with interactive 3D scenes and motion."

func validRaw() map[string]interface{} {
	return map[string]interface{}{
		"companyName":           "Tech & Corp Inc.",
		"website":               "https://techcorp.example.com",
		"contactName":           "Jordan Lee",
		"contactEmail":          "jordan@techcorp.example.com",
		"contactRole":           "CTO",
		"projectTitle":          "Launch Experience",
		"projectDescription":    longDescription,
		"stack":                 []interface{}{"React", "Next.js", "TypeScript"},
		"timeline":              "2-3-months",
		"budget":                "50k-plus",
		"autonomy":              "full",
		"meetingFrequency":      "async",
		"allowsExperimentation": true,
		"sharingPermission":     "public",
		"requiresCompliance":    false,
	}
}

func idealSubmission() *models.Submission {
	return &models.Submission{
		CompanyName:           "Tech & Corp Inc.",
		ContactName:           "Jordan Lee",
		ContactEmail:          "jordan@techcorp.example.com",
		ContactRole:           "CTO",
		ProjectTitle:          "Launch Experience",
		ProjectDescription:    longDescription,
		Stack:                 []string{"React", "Next.js", "TypeScript"},
		Timeline:              models.Timeline2To3Months,
		Budget:                models.Budget50kPlus,
		Autonomy:              models.AutonomyFull,
		MeetingFrequency:      models.MeetingAsync,
		AllowsExperimentation: true,
		SharingPermission:     models.SharingPublic,
	}
}

func misalignedSubmission() *models.Submission {
	sub := idealSubmission()
	sub.Autonomy = models.AutonomyLow
	sub.Stack = []string{"Cobol", "Fortran"}
	sub.Timeline = models.Timeline1To2Weeks
	sub.Budget = models.BudgetUnder5k
	sub.AllowsExperimentation = false
	sub.SharingPermission = models.SharingPrivate
	sub.MeetingFrequency = models.MeetingDaily
	return sub
}

func partialSubmission() *models.Submission {
	sub := idealSubmission()
	sub.Autonomy = models.AutonomyMedium
	sub.Stack = []string{"React", "TypeScript", "Cobol", "Fortran"}
	sub.Timeline = models.Timeline1To2Weeks
	sub.Budget = models.Budget5kTo10k
	sub.AllowsExperimentation = false
	sub.SharingPermission = models.SharingPrivate
	sub.MeetingFrequency = models.MeetingMonthly
	return sub
}
