package usecases

import (
	"fmt"
	"strings"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"
)

// ChronotypeDescription descreve a preferência de cronotipo em linguagem natural
func ChronotypeDescription(chronotype string) string {
	switch chronotype {
	case entities.PreferenceMorning:
		return "feels most alert and energetic in the morning"
	case entities.PreferenceEvening:
		return "feels most alert and energetic in the evening"
	case entities.PreferenceNeither:
		return "adapts to different schedules easily"
	default:
		return "chronotype not specified"
	}
}

// CaffeineAdvice combina a orientação por sexo com a orientação por idade
func CaffeineAdvice(prefs entities.UserPreferences) string {
	base := "Men typically metabolize caffeine faster than women, but individual sensitivity varies"
	if prefs.Sex == entities.SexFemale {
		base = "Women typically metabolize caffeine slower than men, so consider stopping caffeine earlier in the day"
	}

	var byAge string
	switch {
	case prefs.Age > 50:
		byAge = "As we age, caffeine sensitivity often increases, so you may need to limit afternoon caffeine more strictly"
	case prefs.Age < 25:
		byAge = "Younger adults often tolerate caffeine better, but it can still disrupt sleep if consumed too late"
	default:
		byAge = "Most adults should avoid caffeine 6-8 hours before bedtime"
	}
	return base + ". " + byAge
}

// FormatPreferencesForAI formata as preferências para o prompt do coach
func FormatPreferencesForAI(prefs *entities.UserPreferences) string {
	if prefs == nil {
		return "No sleep preferences configured yet - encourage user to set them up for personalized recommendations"
	}

	melatonin := "No, prefers not to use melatonin"
	if prefs.UseMelatonin {
		melatonin = "Yes, willing to use melatonin for sleep optimization"
	}

	var b strings.Builder
	b.WriteString("# User Sleep Preferences\n")
	fmt.Fprintf(&b, "- Natural sleep schedule (days off): %s to %s\n", prefs.SleepStartTimeDaysOff, prefs.SleepEndTimeDaysOff)
	if hours, err := prefs.SleepDurationHours(); err == nil {
		fmt.Fprintf(&b, "- Natural sleep duration: %.1f hours\n", hours)
	}
	fmt.Fprintf(&b, "- Time needed to get ready for work: %d minutes\n", prefs.ReadyTimeMinutes)
	fmt.Fprintf(&b, "- Chronotype: %s person (%s)\n", prefs.Chronotype, ChronotypeDescription(prefs.Chronotype))
	fmt.Fprintf(&b, "- Sex: %s (affects caffeine metabolism)\n", prefs.Sex)
	fmt.Fprintf(&b, "- Age: %d years old\n", prefs.Age)
	fmt.Fprintf(&b, "- Melatonin preference: %s\n", melatonin)
	fmt.Fprintf(&b, "- Caffeine guidance: %s", CaffeineAdvice(*prefs))
	return b.String()
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Unknown"
	}
	return value
}

func formatSleepLogs(logs []entities.SleepLog) string {
	if len(logs) == 0 {
		return "# Sleep Logs\nNo recent sleep logs available"
	}

	var b strings.Builder
	b.WriteString("# Recent Sleep Logs")
	for _, log := range logs {
		events := make([]string, 0, len(log.Events))
		for _, event := range log.Events {
			verb := "Woke up"
			if event.Type == timeline.FallAsleep {
				verb = "Fell asleep"
			}
			events = append(events, fmt.Sprintf("%s at %s", verb, event.Time))
		}
		fmt.Fprintf(&b, "\n- Date: %s\n  Events: %s", log.Date, strings.Join(events, ", "))
		if hours, err := timeline.TotalSleepHours(log.Events); err == nil && hours > 0 {
			fmt.Fprintf(&b, "\n  Total sleep: %.2f hours", hours)
		}
	}
	return b.String()
}

// BuildCoachContext monta o bloco de contexto do usuário anexado às instruções do coach
func BuildCoachContext(profile *entities.UserProfile, prefs *entities.UserPreferences, logs []entities.SleepLog) string {
	sections := []string{}

	if profile != nil {
		stress := "Unknown"
		if profile.StressLevel != nil {
			stress = fmt.Sprintf("%d", *profile.StressLevel)
		}
		sections = append(sections, strings.Join([]string{
			"# User Onboarding Profile",
			"- Chronotype: " + orUnknown(profile.Chronotype),
			"- Work schedule: " + orUnknown(profile.WorkSchedule),
			"- Stress level: " + stress,
			"- Social life: " + orUnknown(profile.SocialLife),
			"- Hobbies: " + orUnknown(profile.Hobbies),
			"- Insomnia Severity: " + orUnknown(profile.InsomniaSeverity),
		}, "\n"))
	}

	sections = append(sections, FormatPreferencesForAI(prefs), formatSleepLogs(logs))
	return strings.Join(sections, "\n\n")
}
