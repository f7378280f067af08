package engine

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var engCfg Config

// Config carries the documented formula constants. Every value has a default,
// so the binary works without the config file.
type Config struct {
	// Default Strouhal number, overridable per request.
	StrouhalNumber float64

	// Damping ratio used when the request does not carry one:
	// max(DampingFloor, DampingPerCompliance × support compliance factor).
	DampingFloor         float64
	DampingPerCompliance float64

	// Empirical tip-mass correction: effective mass factor
	// 1 + TipMassFactor × m_tip/(m′·L). Approximation, not an eigenvalue solve.
	TipMassFactor float64

	// Frequency ratio window flagged as "in resonance band".
	ResonanceBandLow  float64
	ResonanceBandHigh float64

	// Minimum acceptable wake frequency ratio f_n/f_s.
	TargetWFR float64

	// Point count of the default velocity sweep built for the GUI plot.
	SweepPoints int

	// Per-session history capacity kept by the hub.
	HistoryDepth int

	// Listen address of the websocket server.
	Addr string
}

func init() {
	// The path is resolved against the working directory, so the file is only
	// picked up when the binary runs from the repo root; anywhere else the
	// defaults below apply.
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("config file not found, using defaults: ", err)
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	engCfg = Config{
		StrouhalNumber:       file.Section("engine").Key("StrouhalNumber").MustFloat64(0.22),
		DampingFloor:         file.Section("engine").Key("DampingFloor").MustFloat64(0.005),
		DampingPerCompliance: file.Section("engine").Key("DampingPerCompliance").MustFloat64(0.01),
		TipMassFactor:        file.Section("engine").Key("TipMassFactor").MustFloat64(0.23),
		ResonanceBandLow:     file.Section("engine").Key("ResonanceBandLow").MustFloat64(0.8),
		ResonanceBandHigh:    file.Section("engine").Key("ResonanceBandHigh").MustFloat64(1.2),
		TargetWFR:            file.Section("engine").Key("TargetWFR").MustFloat64(2.2),
		SweepPoints:          file.Section("engine").Key("SweepPoints").MustInt(101),
		HistoryDepth:         file.Section("server").Key("HistoryDepth").MustInt(64),
		Addr:                 file.Section("server").Key("Addr").MustString(":9000"),
	}
}

// Cfg returns the loaded configuration.
func Cfg() Config {
	return engCfg
}
