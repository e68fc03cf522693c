package model

// Container edustaa ajossa olevaa containeria
type Container struct {
	ID   string
	Name string // without the leading "/"
}
