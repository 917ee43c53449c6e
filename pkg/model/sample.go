package model

// SampleSubjects is the reference six-term curriculum. Every term requires exactly 20 lectures,
// which fills the default grid.
var SampleSubjects = []Subject{
	// Term 1
	{1, "Algorithms", "Ernani Borges", 8},
	{1, "F. WEB Design", "Marco Maciel", 2},
	{1, "Mathematics", "Jorge", 6},
	{1, "Extension 1", "Aline", 1},
	{1, "Architecture", "Rogélio", 3},

	// Term 2
	{2, "Logic", "Marcelo Barreiro", 3},
	{2, "Data Structures (E.D.)", "Alexandre", 6},
	{2, "Database Modeling (Mod. B.D.)", "Camilo", 2},
	{2, "Operating Systems (S.O.)", "Gustavo Bota", 4},
	{2, "Extension 2", "Rogélio", 1},
	{2, "Web Scripting", "Aline", 2},
	{2, "Free", "Unknow", 2},

	// Term 3
	{3, "OOP (P.O.O.)", "Eduardo Silvestre", 6},
	{3, "Extension 3", "Camilo", 1},
	{3, "O.O. (P.O.)", "Hugo", 5},
	{3, "Databases (B.D.)", "Rogério Costa", 6},
	{3, "Interface", "Lídia", 2},

	// Term 4
	{4, "Project Development and Management (P.D.M.)", "Jefferson", 8},
	{4, "Web Application Development I (D.A.W.1)", "Rafael Godoi", 4},
	{4, "Software Engineering (Esof)", "Mauro", 4},
	{4, "Networks", "Frederico", 4},

	// Term 5
	{5, "Software Engineering Lab (LabEsof)", "Mauro", 6},
	{5, "Project Planning (P.P.)", "Marco Maciel", 2},
	{5, "Web Application Development II (DAW 2)", "Lídia", 4},
	{5, "Probability", "Alef", 2},
	{5, "Ethics", "Ana Lúcia", 2},
	{5, "Server Deployment", "Gustavo Bota", 4},

	// Term 6
	{6, "Project Management (GeProj)", "Marco Maciel", 4},
	{6, "Information Security", "Elson", 4},
	{6, "Extension 6", "Ademir", 2},
	{6, "Entrepreneurship", "Ana Lúcia", 2},
	{6, "Data Science", "Marcelo Barreiro", 4},
	{6, "Computer Intelligence", "José Ricardo", 4},
}

func SampleCatalog() *Catalog {
	catalog, err := NewCatalog(SampleSubjects)
	if err != nil {
		panic(err)
	}
	return catalog
}
