package domain

// Attributes is the attribute set shared by establishments and stores: the
// registration number, display and corporate names, and the postal address.
type Attributes struct {
	Number        string `json:"number" doc:"Registration number"`
	Name          string `json:"name" doc:"Display name"`
	CorporateName string `json:"corporate_name" doc:"Legal/corporate name"`
	Address       string `json:"address" doc:"Street"`
	AddressNumber string `json:"address_number" doc:"Street number"`
	City          string `json:"city" doc:"City"`
	State         string `json:"state" doc:"State (two letters)"`
	ZipCode       string `json:"zip_code" doc:"Postal code"`
}

// IsZero reports whether no attribute is set.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// Establishment is a top-level business entity. Values are snapshots of the
// remote state and are never mutated in place.
type Establishment struct {
	ID ID `json:"id"`
	Attributes
}

// Input returns the full replacement payload for this establishment.
func (e Establishment) Input() EstablishmentInput {
	return EstablishmentInput{Attributes: e.Attributes}
}

// EstablishmentWithStores is the read model returned when fetching a single
// establishment.
type EstablishmentWithStores struct {
	Establishment
	Stores []Store `json:"stores"`
}

// EstablishmentWithStoresTotal is the read model returned by the listing,
// carrying the number of stores instead of the stores themselves.
type EstablishmentWithStoresTotal struct {
	Establishment
	StoresTotal int `json:"stores_total"`
}

// EstablishmentInput is the write payload for create and update. It carries
// exactly the whitelisted attributes and never an id.
type EstablishmentInput struct {
	Attributes
}
