package response_models

type AddressLookupResult struct {
	Street              string   `json:"street"`
	City                string   `json:"city"`
	Postcode            string   `json:"postcode"`
	HouseNumber         string   `json:"house_number"`
	HouseNumberAddition string   `json:"house_number_addition"`
	Lat                 *float64 `json:"lat"`
	Lng                 *float64 `json:"lng"`
	Address             string   `json:"address"`
}
