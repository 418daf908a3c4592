package storefront

import (
	"strings"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/customer"
)

// Session is the locally remembered shopper. It identifies, it does not
// authenticate.
type Session struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// LocalLogin starts a session from an email alone. The id is freshly
// generated and never checked against the server.
func LocalLogin(email string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	return &Session{ID: customer.NewID(), Email: email}, nil
}

func SessionFor(c *customer.Customer) *Session {
	return &Session{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

// LoadSession returns the stored session or nil.
func LoadSession(st Storage) (*Session, error) {
	var s Session
	ok, err := st.Load(KeySession, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func SaveSession(st Storage, s *Session) error { return st.Save(KeySession, s) }

func ClearSession(st Storage) error { return st.Delete(KeySession) }
