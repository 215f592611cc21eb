package mail

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Dolapo001/SPAS/internal/database/models"
)

// RosterHeader is the header row of the supervisor roster attachment
var RosterHeader = []string{"Matric No", "Full Name", "CGPA", "Email"}

// RosterFilename names the roster attachment of a group
func RosterFilename(groupNumber int) string {
	return fmt.Sprintf("group_%d_students.csv", groupNumber)
}

// RosterCSV renders the members of a group as CSV
func RosterCSV(students []models.Student) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(RosterHeader); err != nil {
		return nil, err
	}
	for _, s := range students {
		row := []string{s.MatricNo, s.FullName, strconv.FormatFloat(s.Score, 'f', 2, 64), s.Email}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write roster csv: %w", err)
	}
	return buf.Bytes(), nil
}
