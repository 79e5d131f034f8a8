package parser

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/tormoder/fit"
)

// Profile carries the body measurements FIT sessions don't record.
type Profile struct {
	Weight float64 // in kg
	Height float64 // in cm
}

// FITParser turns the sessions of a FIT activity into sensor packages.
type FITParser struct {
	profile Profile
	logger  *slog.Logger
}

func NewFITParser(profile Profile, logger *slog.Logger) *FITParser {
	return &FITParser{
		profile: profile,
		logger:  logger,
	}
}

func (p *FITParser) ParseFile(filename string) ([]Package, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return p.ParseData(data)
}

func (p *FITParser) ParseData(data []byte) ([]Package, error) {
	if len(data) < 12 || !bytes.Equal(data[8:12], []byte(".FIT")) {
		return nil, fmt.Errorf("invalid FIT file signature")
	}

	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}

	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("no sessions found in FIT file")
	}

	var packages []Package
	for _, session := range activity.Sessions {
		pkg, ok := p.sessionPackage(session)
		if !ok {
			p.logger.Info("skipping session", "sport", session.Sport, "start_time", session.StartTime)
			continue
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// sessionPackage maps one session to a package. Garmin counts running and
// walking cycles as strides, two steps each.
func (p *FITParser) sessionPackage(session *fit.SessionMsg) (Package, bool) {
	hours := uint32Value(session.TotalTimerTime) / 1000 / 3600
	cycles := uint32Value(session.TotalCycles)

	switch session.Sport {
	case fit.SportRunning:
		return Package{
			Code: string(CodeRunning),
			Data: []float64{cycles * 2, hours, p.profile.Weight},
		}, true
	case fit.SportWalking:
		return Package{
			Code: string(CodeWalking),
			Data: []float64{cycles * 2, hours, p.profile.Weight, p.profile.Height},
		}, true
	case fit.SportSwimming:
		return Package{
			Code: string(CodeSwimming),
			Data: []float64{
				cycles,
				hours,
				p.profile.Weight,
				uint16Value(session.PoolLength) / 100,
				uint16Value(session.NumActiveLengths),
			},
		}, true
	default:
		return Package{}, false
	}
}

// FIT marks absent fields with the type's max value.
func uint32Value(v uint32) float64 {
	if v == math.MaxUint32 {
		return 0
	}
	return float64(v)
}

func uint16Value(v uint16) float64 {
	if v == math.MaxUint16 {
		return 0
	}
	return float64(v)
}
