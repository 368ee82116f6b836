package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies an entity on the remote API. IDs are assigned remotely and
// treated as opaque strings by the console. The remote API emits numeric ids,
// so ID decodes both JSON numbers and strings and encodes numeric ids back as
// JSON numbers.
type ID string

func (id ID) String() string {
	return string(id)
}

// Canonical returns the id with a decimal id reduced to its shortest form, so
// "007" and "7" name the same entity. Other ids are returned unchanged.
func (id ID) Canonical() ID {
	if !id.digitsOnly() {
		return id
	}
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return id
	}
	return ID(strconv.FormatUint(n, 10))
}

// IsNumeric reports whether the id is a canonical unsigned decimal number
// that can be written as a JSON number.
func (id ID) IsNumeric() bool {
	return id.digitsOnly() && id.Canonical() == id
}

// Equal compares ids in canonical form.
func (id ID) Equal(other ID) bool {
	return id.Canonical() == other.Canonical()
}

func (id ID) digitsOnly() bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

func (id ID) MarshalJSON() ([]byte, error) {
	if c := id.Canonical(); c.IsNumeric() {
		return []byte(c), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("domain.ID: %w", err)
		}
		*id = ID(s).Canonical()
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("domain.ID: %w", err)
	}
	*id = ID(n.String()).Canonical()
	return nil
}
