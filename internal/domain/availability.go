package domain

// TimeSlot is one bookable interval on a given date for a given doctor.
// Time is wall-clock "HH:MM" in the clinic timezone.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
