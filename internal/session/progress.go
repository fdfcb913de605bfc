package session

import (
	"math"

	"github.com/ironlog/ironlog/internal/models"
)

// Progress returns session completion as a rounded percentage in [0, 100].
// A session with no sets reports 0.
func Progress(s *models.Session) int {
	total := s.TotalSets()
	if total == 0 {
		return 0
	}
	done := s.CompletedSets()
	return int(math.Round(100 * float64(done) / float64(total)))
}
