package entities

// Diagnosis is one row of the diagnosis reference table: a
// classification code and its human-readable name. The table is loaded
// once by the application and is read-only afterwards.
type Diagnosis struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Latin string `json:"latin,omitempty" yaml:"latin,omitempty"`
}
