package models

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // citizen or admin
}

// DummyUsers backs /login until the identity provider integration lands.
var DummyUsers = []User{
	{"1", "citizen1", "pass1", "citizen"},
	{"2", "citizen2", "pass2", "citizen"},
	{"3", "citizen3", "pass3", "citizen"},
	{"4", "citizen4", "pass4", "citizen"},
	{"5", "citizen5", "pass5", "citizen"},
	{"10", "admin", "admin123", "admin"},
}
