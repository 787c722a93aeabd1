package services

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/nschoena/golf-tracker/internal/models"
	"github.com/nschoena/golf-tracker/internal/providers"
	"github.com/nschoena/golf-tracker/internal/report"
	"github.com/nschoena/golf-tracker/pkg/config"
)

// ScorecardService wires the flat-file providers to the scorecard model and
// the report renderers.
type ScorecardService struct {
	cfg    *config.Config
	logger *logrus.Entry
}

func NewScorecardService(cfg *config.Config, logger *logrus.Entry) *ScorecardService {
	return &ScorecardService{
		cfg:    cfg,
		logger: logger,
	}
}

// BuildScoreCard loads a course and a score file and composes them. File
// names are resolved against the configured data directories unless given as
// existing or absolute paths. Validation errors propagate unchanged.
func (s *ScorecardService) BuildScoreCard(courseFile, scoreFile string) (*models.ScoreCard, error) {
	coursePath := resolvePath(s.cfg.CoursesDir, courseFile)
	scorePath := resolvePath(s.cfg.ScoresDir, scoreFile)

	course, err := providers.LoadCourse(coursePath)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"course":  course.Name(),
		"holes":   len(course.Holes()),
		"yardage": course.Yardage(),
	}).Debug("Loaded course")

	score, err := providers.LoadScore(scorePath)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"date":     score.DatePlayed().Format("2006-01-02"),
		"holes":    len(score.HolesPlayed()),
		"detailed": score.IsDetailed(),
	}).Debug("Loaded score")

	if score.CourseID() != course.ID() {
		s.logger.WithFields(logrus.Fields{
			"course_id": course.ID(),
			"score_ref": score.CourseID(),
		}).Warn("Score references a different course id")
	}

	return models.NewScoreCard(course, score)
}

// WriteReport renders the text scorecard to w.
func (s *ScorecardService) WriteReport(w io.Writer, sc *models.ScoreCard) error {
	return report.WriteScoreCard(w, sc)
}

// Export writes the scorecard workbook. Relative paths land in the configured
// export directory, which is created on demand.
func (s *ScorecardService) Export(path string, sc *models.ScoreCard) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.cfg.ExportDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := report.ExportXLSX(path, sc); err != nil {
		return err
	}
	s.logger.WithField("path", path).Info("Exported scorecard workbook")
	return nil
}

// resolvePath prefers a path that already resolves on disk, then falls back
// to the configured directory.
func resolvePath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(dir, name)
}
