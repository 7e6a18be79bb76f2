package models

// Credential is a stored login record. Id is assigned when the record is
// first committed and never changes afterwards.
type Credential struct {
	Id       string `json:"id"`
	Service  string `json:"service"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

// Overview is the part of a Credential that is safe to print.
type Overview struct {
	Id       string
	Service  string
	Username string
}

func (c Credential) Overview() Overview {
	return Overview{Id: c.Id, Service: c.Service, Username: c.Username}
}
