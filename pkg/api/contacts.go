package api

import "github.com/vploshikov/gocrm/internal/models"

// CreateContactRequest is the body of POST /contacts.
type CreateContactRequest struct {
	FirstName string  `json:"contact_first_name"`
	LastName  string  `json:"contact_last_name"`
	Number    string  `json:"contact_number"`
	Email     *string `json:"contact_email"`
	Note      *string `json:"note"`
}

// CreateContactResponse is returned on successful contact creation.
type CreateContactResponse struct {
	OK        bool  `json:"ok"`
	ContactID int64 `json:"contactId"`
}

// UpdateContactRequest is the body of PUT /contacts/{id}. Every field is
// optional; an absent field keeps its stored value.
type UpdateContactRequest struct {
	FirstName *string `json:"contact_first_name"`
	LastName  *string `json:"contact_last_name"`
	Number    *string `json:"contact_number"`
	Email     *string `json:"contact_email"`
	Note      *string `json:"note"`
}

// ContactDetail is a contact with its child rows attached. Addresses and
// Tasks are always present, empty when the contact has none.
type ContactDetail struct {
	models.Contact
	Addresses []models.Address `json:"addresses"`
	Tasks     []models.Task    `json:"tasks"`
}

// CreateAddressRequest is the body of POST /contacts/{id}/address and
// POST /addresses. ContactID is taken from the path in the former and
// from the body in the latter.
type CreateAddressRequest struct {
	ContactID int64   `json:"contact_id"`
	Line1     string  `json:"address_line1"`
	Line2     *string `json:"address_line2"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Pincode   *string `json:"pincode"`
	Country   *string `json:"country"`
}

// CreateAddressResponse is returned by POST /contacts/{id}/address.
type CreateAddressResponse struct {
	OK        bool  `json:"ok"`
	AddressID int64 `json:"addressId"`
}

// AddressSavedResponse is returned by POST /addresses.
type AddressSavedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
