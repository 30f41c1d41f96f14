package model

import "fmt"

// Feature defines one of the numeric indicator columns of a Province.
type Feature byte

const (
	// NoFeature is an undefined column.
	NoFeature Feature = iota
	// Students is the number of enrolled students.
	Students
	// Dropouts is the number of students that left school.
	Dropouts
	// TeacherQualification is the percentage of teachers and principals with at least a bachelor degree.
	TeacherQualification
	// GoodClassrooms is the percentage of classrooms in good condition.
	GoodClassrooms
)

// Features are all indicator columns in table order.
var Features = []Feature{
	Students,
	Dropouts,
	TeacherQualification,
	GoodClassrooms,
}

// String returns the column name of the feature.
func (f Feature) String() string {
	switch f {
	case Students:
		return "Siswa"
	case Dropouts:
		return "Putus Sekolah"
	case TeacherQualification:
		return "Guru_Kepsek_S1_Keatas"
	case GoodClassrooms:
		return "Ruang_Kelas_Baik"
	}
	return "None"
}

// Value extracts the raw value of the feature from the given province.
func (f Feature) Value(p Province) float64 {
	switch f {
	case Students:
		return float64(p.Students)
	case Dropouts:
		return float64(p.Dropouts)
	case TeacherQualification:
		return float64(p.TeacherQualification)
	case GoodClassrooms:
		return float64(p.GoodClassrooms)
	}
	panic(fmt.Sprintf("unknown feature %d", f))
}

// MarshalText encodes the feature as its column name.
func (f Feature) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFeature returns the feature for the given column name.
func ParseFeature(s string) (Feature, error) {
	for _, f := range Features {
		if f.String() == s {
			return f, nil
		}
	}
	return NoFeature, fmt.Errorf("unknown feature '%s': %w", s, InvalidParameterErr)
}

// UnmarshalText decodes the feature from its column name.
func (f *Feature) UnmarshalText(b []byte) error {
	parsed, err := ParseFeature(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
