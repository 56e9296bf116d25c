package dto

// StatsResponse is the front-desk dashboard summary. RevenueToday follows the
// decimal-as-string convention used for all monetary amounts.
type StatsResponse struct {
	TotalRooms    int    `json:"total_rooms"`
	OccupiedRooms int    `json:"occupied_rooms"`
	CheckinsToday int    `json:"checkins_today"`
	RevenueToday  string `json:"revenue_today"`
}
