package models

// CredentialEntry is a single vault record. Password and Secrets hold
// ciphertext once the entry is owned by a vault; every other field is
// plaintext.
type CredentialEntry struct {
	Tag      string
	Website  string
	Username string
	Email    string
	AltEmail string
	Password string
	Secrets  []string
	Hints    []string
	Comments []string
}

// Scalar returns the value of a non-array field.
func (e *CredentialEntry) Scalar(f Field) string {
	switch f {
	case FieldTag:
		return e.Tag
	case FieldWebsite:
		return e.Website
	case FieldUsername:
		return e.Username
	case FieldEmail:
		return e.Email
	case FieldAltEmail:
		return e.AltEmail
	case FieldPassword:
		return e.Password
	}
	return ""
}

// SetScalar assigns a non-array field. Array fields are ignored.
func (e *CredentialEntry) SetScalar(f Field, v string) {
	switch f {
	case FieldTag:
		e.Tag = v
	case FieldWebsite:
		e.Website = v
	case FieldUsername:
		e.Username = v
	case FieldEmail:
		e.Email = v
	case FieldAltEmail:
		e.AltEmail = v
	case FieldPassword:
		e.Password = v
	}
}

// List returns the value of an array field.
func (e *CredentialEntry) List(f Field) []string {
	switch f {
	case FieldSecrets:
		return e.Secrets
	case FieldHints:
		return e.Hints
	case FieldComments:
		return e.Comments
	}
	return nil
}

// SetList assigns an array field. Scalar fields are ignored.
func (e *CredentialEntry) SetList(f Field, v []string) {
	switch f {
	case FieldSecrets:
		e.Secrets = v
	case FieldHints:
		e.Hints = v
	case FieldComments:
		e.Comments = v
	}
}

// Clone returns a deep copy so callers cannot mutate vault state through
// shared slices.
func (e CredentialEntry) Clone() CredentialEntry {
	e.Secrets = cloneStrings(e.Secrets)
	e.Hints = cloneStrings(e.Hints)
	e.Comments = cloneStrings(e.Comments)
	return e
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
