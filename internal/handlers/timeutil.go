package handlers

import "time"

// Asia/Kuala_Lumpur for everything shown to the user
var tzMalaysia *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		// no tzdata in the image; MYT has no DST
		tzMalaysia = time.FixedZone("MYT", 8*3600)
		return
	}
	tzMalaysia = loc
}

// Now is the wall clock in Malaysia time; stamps ZIP entries and the footer.
func Now() time.Time {
	return time.Now().In(tzMalaysia)
}
