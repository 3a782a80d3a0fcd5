package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"patient-record-client/internal/domain/entities"
)

// DiagnosisServiceImpl implements DiagnosisServiceContract over an
// in-memory copy of the reference table.
type DiagnosisServiceImpl struct {
	diagnoses []entities.Diagnosis
	byCode    map[string]entities.Diagnosis
}

var _ DiagnosisServiceContract = (*DiagnosisServiceImpl)(nil)

// NewDiagnosisService creates a lookup service over the given table.
func NewDiagnosisService(diagnoses []entities.Diagnosis) DiagnosisServiceContract {
	byCode := make(map[string]entities.Diagnosis, len(diagnoses))
	for _, d := range diagnoses {
		byCode[d.Code] = d
	}
	return &DiagnosisServiceImpl{
		diagnoses: diagnoses,
		byCode:    byCode,
	}
}

func (s *DiagnosisServiceImpl) NameForCode(code string) string {
	return s.byCode[code].Name
}

func (s *DiagnosisServiceImpl) List() []entities.Diagnosis {
	return s.diagnoses
}

// LoadDiagnoses reads the diagnosis reference table from a YAML file.
func LoadDiagnoses(path string) ([]entities.Diagnosis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading diagnosis table: %w", err)
	}

	var diagnoses []entities.Diagnosis
	if err := yaml.Unmarshal(data, &diagnoses); err != nil {
		return nil, fmt.Errorf("parsing diagnosis table %s: %w", path, err)
	}
	return diagnoses, nil
}
