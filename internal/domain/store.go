package domain

// Store is a physical location belonging to exactly one establishment.
type Store struct {
	ID              ID `json:"id"`
	EstablishmentID ID `json:"establishment_id"`
	Attributes
}

// Input returns the full replacement payload for this store.
func (s Store) Input() StoreInput {
	return StoreInput{EstablishmentID: s.EstablishmentID, Attributes: s.Attributes}
}

// BelongsTo reports whether the store references the given establishment.
func (s Store) BelongsTo(establishmentID ID) bool {
	return s.EstablishmentID != "" && s.EstablishmentID.Equal(establishmentID)
}

// StoreInput is the write payload for stores: the owning establishment plus
// the whitelisted attributes.
type StoreInput struct {
	EstablishmentID ID `json:"establishment_id" doc:"Owning establishment ID"`
	Attributes
}
