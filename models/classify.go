// ABOUTME: Static classification rules for e-waste items
// ABOUTME: Pure function of (device type, device condition) to a disposal recommendation

package models

import "fmt"

// ClassifyRequest represents the body of /api/classify
type ClassifyRequest struct {
	DeviceType      string `json:"deviceType"`
	DeviceCondition string `json:"deviceCondition"`
}

// ClassificationResult echoes the inputs alongside the recommendation
type ClassificationResult struct {
	Message         string `json:"message"`
	Recommendation  string `json:"recommendation"`
	DeviceType      string `json:"deviceType"`
	DeviceCondition string `json:"deviceCondition"`
}

// Classify applies the fixed rule table. Working devices are steered toward
// reuse before recycling; otherwise the recommendation is keyed by device type.
// Same inputs always produce the same result.
func Classify(deviceType, deviceCondition string) ClassificationResult {
	result := ClassificationResult{
		Message:         fmt.Sprintf("You classified a %s %s.", deviceCondition, deviceType),
		DeviceType:      deviceType,
		DeviceCondition: deviceCondition,
	}

	switch deviceCondition {
	case "Working", "Partially Working":
		result.Recommendation = fmt.Sprintf("Consider donating or repairing your %s before recycling.", deviceType)
		return result
	}

	switch deviceType {
	case "Smartphone", "Laptop", "Tablet":
		result.Recommendation = fmt.Sprintf("This %s likely contains valuable materials. Find a specialized e-waste recycler.", deviceType)
	case "Battery":
		result.Recommendation = "Batteries should always be recycled separately. Do NOT dispose of them in regular trash."
	case "TV", "Monitor":
		result.Recommendation = fmt.Sprintf("Large electronics like %s often require special pick-up or drop-off.", deviceType)
	default:
		result.Recommendation = "Please consult local recycling guidelines."
	}

	return result
}
