package recommend

import (
	"encoding/json"
	"fmt"
	"os"
)

// DumpToTmpFile writes the full result as indented JSON to a temporary file
// and returns its path.
func (r *Result) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "recommendations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByShelter groups the shortlist by shelter.
func (r *Result) ReportByShelter() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, scored := range r.Dogs {
		dog := scored.Dog
		key := dog.Shelter.Name
		report[key] = append(report[key], map[string]string{
			"name":          dog.Name,
			"breed":         dog.Breed,
			"size":          string(dog.Size),
			"age":           string(dog.Age),
			"compatibility": fmt.Sprintf("%.1f", scored.CompatibilityScore),
			"monthly cost":  fmt.Sprintf("$%.0f", dog.MonthlyCost),
			"contact":       fmt.Sprintf("%s / %s", dog.Shelter.Phone, dog.Shelter.Email),
			"url":           dog.AdoptionURL,
		})
	}
	return report
}

func (r *Result) Len() int {
	return len(r.Dogs)
}
