package model

// Province is a single row of the education indicator table.
type Province struct {
	Name                 string `json:"Provinsi"`
	Students             int    `json:"Siswa"`
	Dropouts             int    `json:"Putus Sekolah"`
	TeacherQualification int    `json:"Guru_Kepsek_S1_Keatas"`
	GoodClassrooms       int    `json:"Ruang_Kelas_Baik"`
	Cluster              int    `json:"Cluster"`
}

// Table is an ordered collection of provinces.
type Table []Province

// Copy returns an independent copy of the table.
func (t Table) Copy() Table {
	c := make(Table, len(t))
	copy(c, t)
	return c
}

// Column extracts the raw values of the given feature in row order.
func (t Table) Column(f Feature) []float64 {
	values := make([]float64, len(t))
	for i, p := range t {
		values[i] = f.Value(p)
	}
	return values
}

// Names returns the province names in row order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, p := range t {
		names[i] = p.Name
	}
	return names
}
