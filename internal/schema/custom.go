package schema

import "fmt"

type RoundedFloat float64

func (f RoundedFloat) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", f)), nil
}

// WheelchairAmenityID is the SerpAPI amenity identifier marking a property
// as wheelchair accessible. Static reference value, reproduced exactly for
// caller compatibility.
const WheelchairAmenityID = 53
