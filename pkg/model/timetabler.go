package model

type Timetabler interface {
	Build(catalog *Catalog) (*Timetable, error)

	Verify(timetable *Timetable) bool
}
