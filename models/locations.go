// ABOUTME: Static recycling location directory and device-type filtering
// ABOUTME: Fixed reference data served by /api/recycling_locations

package models

// RecyclingLocation describes a drop-off point and the device types it accepts
type RecyclingLocation struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Contact       string   `json:"contact"`
	Hours         string   `json:"hours"`
	AcceptedTypes []string `json:"acceptedTypes"`
}

// RecyclingLocations returns the fixed location directory.
func RecyclingLocations() []RecyclingLocation {
	return []RecyclingLocation{
		{
			ID:            1,
			Name:          "Green Earth Recycling Center",
			Address:       "123 E-Waste Lane, Hyderabad, Telangana",
			Contact:       "040-12345678",
			Hours:         "Mon-Fri: 9 AM - 5 PM",
			AcceptedTypes: []string{"Laptop", "Smartphone", "TV", "Monitor", "Printer", "Desktop", "Battery", "Cable"},
		},
		{
			ID:            2,
			Name:          "Eco-Friendly Disposal Hub",
			Address:       "456 Recycle Road, Gachibowli, Hyderabad",
			Contact:       "040-87654321",
			Hours:         "Mon-Sat: 10 AM - 6 PM",
			AcceptedTypes: []string{"Smartphone", "Tablet", "Battery", "Cable", "Other"},
		},
		{
			ID:            3,
			Name:          "City E-Waste Drop-off Point",
			Address:       "789 Urban Street, Begumpet, Hyderabad",
			Contact:       "N/A",
			Hours:         "24/7 Drop-off (Bin)",
			AcceptedTypes: []string{"Laptop", "Smartphone", "Tablet", "Monitor", "Printer", "Battery", "Cable"},
		},
		{
			ID:            4,
			Name:          "TechReuse Solutions",
			Address:       "101 Tech Park, Hitech City, Hyderabad",
			Contact:       "040-99887766",
			Hours:         "Mon-Fri: 9 AM - 7 PM",
			AcceptedTypes: []string{"Laptop", "Desktop", "Monitor", "Smartphone", "Tablet"},
		},
		{
			ID:            5,
			Name:          "Battery Recycle Point",
			Address:       "22 Recharge Blvd, Jubilee Hills, Hyderabad",
			Contact:       "040-11223344",
			Hours:         "Mon-Sun: 8 AM - 8 PM",
			AcceptedTypes: []string{"Battery", "Smartphone", "Tablet"},
		},
	}
}

// FilterLocationsByType returns the locations whose accepted-types set contains
// deviceType. An empty filter or "All" returns the full list.
func FilterLocationsByType(locations []RecyclingLocation, deviceType string) []RecyclingLocation {
	if deviceType == "" || deviceType == "All" {
		return locations
	}

	filtered := make([]RecyclingLocation, 0, len(locations))
	for _, loc := range locations {
		for _, accepted := range loc.AcceptedTypes {
			if accepted == deviceType {
				filtered = append(filtered, loc)
				break
			}
		}
	}
	return filtered
}
