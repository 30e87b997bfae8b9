package services

import (
	"fmt"
	"strings"

	"github.com/Prashant8008/Fitness-Ai/models"
)

const profileEncouragement = "Note: The user hasn't completed their profile yet. Encourage them to fill out their profile for more personalized advice."

// ComposePrompt builds the prompt sent to the advice model: a fixed
// advisor preamble quoting the question, plus a structured block of the
// user's profile when one exists. The question passes through verbatim.
func ComposePrompt(question string, profile *models.UserProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are a professional fitness and nutrition AI assistant. The user is asking: "%s"

Please provide a comprehensive, personalized response based on their profile data. Be encouraging, specific, and actionable.`, question)

	if profile == nil {
		sb.WriteString("\n\n")
		sb.WriteString(profileEncouragement)
		return sb.String()
	}

	sb.WriteString("\nUSER PROFILE DATA:\n")
	fmt.Fprintf(&sb, "- Age: %s\n", intOrDefault(profile.Age(), "Not provided"))
	fmt.Fprintf(&sb, "- Gender: %s\n", textOrDefault(profile.GenderDisplay(), "Not provided"))
	fmt.Fprintf(&sb, "- Height: %s cm\n", floatOrDefault(profile.Height, "Not provided"))
	fmt.Fprintf(&sb, "- Weight: %s kg\n", floatOrDefault(profile.Weight, "Not provided"))
	fmt.Fprintf(&sb, "- BMI: %s\n", floatOrDefault(profile.BMI(), "Not calculated"))
	fmt.Fprintf(&sb, "- Body Fat: %s%%\n", floatOrDefault(profile.BodyFatPercentage, "Not provided"))
	fmt.Fprintf(&sb, "- Fitness Goal: %s\n", textOrDefault(profile.FitnessGoalDisplay(), "Not specified"))
	fmt.Fprintf(&sb, "- Activity Level: %s\n", textOrDefault(profile.ActivityLevelDisplay(), "Not specified"))
	fmt.Fprintf(&sb, "- Target Weight: %s kg\n", floatOrDefault(profile.TargetWeight, "Not provided"))
	fmt.Fprintf(&sb, "- Medical Conditions: %s\n", textOrDefault(profile.MedicalConditions, "None reported"))
	fmt.Fprintf(&sb, "- Medications: %s\n", textOrDefault(profile.Medications, "None reported"))
	fmt.Fprintf(&sb, "- Allergies: %s\n", textOrDefault(profile.Allergies, "None reported"))
	fmt.Fprintf(&sb, "- Preferred Exercise Types: %s\n", textOrDefault(profile.PreferredExerciseTypes, "Not specified"))
	fmt.Fprintf(&sb, "- Available Equipment: %s\n", textOrDefault(profile.AvailableEquipment, "Not specified"))
	fmt.Fprintf(&sb, "- Workout Duration: %s minutes per session\n", intOrDefault(profile.WorkoutDuration, "Not specified"))
	fmt.Fprintf(&sb, "- Workout Frequency: %s days per week\n", intOrDefault(profile.WorkoutFrequency, "Not specified"))
	fmt.Fprintf(&sb, "- Dietary Restrictions: %s\n", textOrDefault(profile.DietaryRestrictions, "None"))
	fmt.Fprintf(&sb, "- Meal Preferences: %s\n", textOrDefault(profile.MealPreferences, "Not specified"))

	sb.WriteString("\nPlease tailor your response specifically to this user's profile, goals, and constraints. If they ask about exercises, consider their available equipment. If they ask about nutrition, consider their dietary restrictions and meal preferences. Always prioritize their safety and medical conditions.\n")

	return sb.String()
}

func textOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func floatOrDefault(v *float64, def string) string {
	if v == nil {
		return def
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", *v), "0"), ".")
}

func intOrDefault(v *int, def string) string {
	if v == nil {
		return def
	}
	return fmt.Sprintf("%d", *v)
}
