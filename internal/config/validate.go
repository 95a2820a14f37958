package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
)

// Validation errors.
var (
	ErrUnsupportedVersion  = errors.New("unsupported config version")
	ErrInvalidHourCycle    = errors.New("invalid hour cycle")
	ErrInvalidPresentation = errors.New("invalid presentation")
	ErrInvalidGeometry     = errors.New("invalid wheel geometry")
	ErrInvalidYearSpan     = errors.New("invalid year span")
	ErrInvalidPhysics      = errors.New("invalid physics")
	ErrInvalidLogging      = errors.New("invalid logging")
)

// SupportedVersions is the schema version constraint this build reads.
const SupportedVersions = "^1"

const maxYearSpan = 100

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateVersion(),
		c.Picker.validate(),
		c.Physics.validate(),
		c.Logging.validate(),
	)
}

func (c *Config) validateVersion() error {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, c.Version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

func (p PickerConfig) validate() error {
	var errs []error
	switch p.HourCycle {
	case HourCycle12, HourCycle24, HourCycleAuto:
	default:
		errs = append(errs, fmt.Errorf("%w: %q (want 12, 24 or auto)", ErrInvalidHourCycle, p.HourCycle))
	}
	switch p.Presentation {
	case PresentationModal, PresentationEmbedded:
	default:
		errs = append(errs, fmt.Errorf("%w: %q (want modal or embedded)", ErrInvalidPresentation, p.Presentation))
	}
	if p.RowHeight < 0 {
		errs = append(errs, fmt.Errorf("%w: row_height %v", ErrInvalidGeometry, p.RowHeight))
	}
	if p.VisibleRows < 0 {
		errs = append(errs, fmt.Errorf("%w: visible_rows %d", ErrInvalidGeometry, p.VisibleRows))
	}
	if p.YearSpan < 0 || p.YearSpan > maxYearSpan {
		errs = append(errs, fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidYearSpan, p.YearSpan, maxYearSpan))
	}
	return errors.Join(errs...)
}

func (p PhysicsConfig) validate() error {
	var errs []error
	if p.Friction < 0 || p.Friction >= 1 {
		errs = append(errs, fmt.Errorf("%w: friction %v (want 0 <= f < 1)", ErrInvalidPhysics, p.Friction))
	}
	if p.MinReleaseVelocity < 0 || p.MinVelocity < 0 || p.TapThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: thresholds must not be negative", ErrInvalidPhysics))
	}
	if p.VelocityWindow < 0 || p.SnapPerRow < 0 || p.SnapMin < 0 || p.SnapMax < 0 || p.ScrollIdle < 0 {
		errs = append(errs, fmt.Errorf("%w: durations must not be negative", ErrInvalidPhysics))
	}
	if p.SnapMin > 0 && p.SnapMax > 0 && p.SnapMin > p.SnapMax {
		errs = append(errs, fmt.Errorf("%w: snap_min %s exceeds snap_max %s", ErrInvalidPhysics, p.SnapMin, p.SnapMax))
	}
	return errors.Join(errs...)
}

func (l LoggingConfig) validate() error {
	var errs []error
	if l.Level != "" {
		if _, err := zerolog.ParseLevel(l.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: level %q", ErrInvalidLogging, l.Level))
		}
	}
	switch l.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: format %q (want json or console)", ErrInvalidLogging, l.Format))
	}
	return errors.Join(errs...)
}
