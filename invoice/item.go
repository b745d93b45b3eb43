package invoice

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LineItem is one billable entry of the invoice being built. Immutable once
// added; it only ever leaves the store through Remove or Clear.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ItemCandidate carries the raw field values as entered by the user. The
// store treats them as untrusted text and validates on Add.
type ItemCandidate struct {
	Name      string
	Quantity  string
	UnitPrice string
}

var validate = validator.New()

// newItemID mints an id unique within the session.
func newItemID() string {
	return uuid.NewString()
}

type itemInput struct {
	Name      string  `validate:"required"`
	Quantity  float64 `validate:"gt=0"`
	UnitPrice float64 `validate:"gt=0"`
}

var itemFieldNames = map[string]string{
	"Name":      "name",
	"Quantity":  "quantity",
	"UnitPrice": "unit_price",
}

// ItemStore holds the pending line items of the invoice currently being
// built, in insertion order.
type ItemStore struct {
	items []LineItem
}

func NewItemStore() *ItemStore {
	return &ItemStore{}
}

// Add validates the candidate and appends a new line item. Every failing
// field is reported in the returned ValidationError, not just the first.
func (s *ItemStore) Add(c ItemCandidate) (LineItem, error) {
	fields := map[string]string{}

	in := itemInput{Name: strings.TrimSpace(c.Name)}
	if v, err := strconv.ParseFloat(strings.TrimSpace(c.Quantity), 64); err != nil {
		fields["quantity"] = "must be a number"
	} else {
		in.Quantity = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(c.UnitPrice), 64); err != nil {
		fields["unit_price"] = "must be a number"
	} else {
		in.UnitPrice = v
	}

	if err := validate.Struct(in); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ves {
				name := itemFieldNames[fe.StructField()]
				if _, seen := fields[name]; seen {
					continue
				}
				switch fe.Tag() {
				case "required":
					fields[name] = "must not be blank"
				default:
					fields[name] = "must be greater than 0"
				}
			}
		}
	}

	if len(fields) > 0 {
		return LineItem{}, &ValidationError{Fields: fields}
	}

	item := LineItem{
		ID:        newItemID(),
		Name:      in.Name,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
	s.items = append(s.items, item)
	return item, nil
}

// Remove drops the item with the given id. Unknown ids are a no-op.
func (s *ItemStore) Remove(id string) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// List returns the items in insertion order. The slice is a copy.
func (s *ItemStore) List() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ItemStore) Clear() {
	s.items = nil
}

// replace swaps in a full item list; used when regenerating from history.
func (s *ItemStore) replace(items []LineItem) {
	s.items = make([]LineItem, len(items))
	copy(s.items, items)
}
