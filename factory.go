package gohz

// Config holds the configuration for a throttler instance.
//
// The zero value is valid: it selects the precise clock, the standard
// library sink and no admission history.
type Config struct {

	// Clock supplies the monotonic timestamps the gates measure
	// elapsed time against. Choosing between NewPreciseClock and
	// a coarse clock is a construction-time decision: it trades
	// gating precision for per-call overhead and never changes the
	// admission algorithm.
	//
	// When not specified, the package default precise clock is used.
	// Tests can inject a ManualClock here.
	Clock Clock

	// Sink receives the admitted emissions.
	//
	// When not specified, emissions go to the standard library
	// default logger. Adapters for zap, logrus and zerolog are
	// available via NewZapSink, NewLogrusSink and NewZerologSink.
	Sink Sink

	// HistorySize, when greater than zero, enables retaining the
	// last HistorySize admitted emissions for inspection through
	// Throttler.History. Zero disables history entirely.
	HistorySize int
}

// throttlerEffectiveConfig holds the validated and parsed
// configuration that was obtained from the user-provided one.
type throttlerEffectiveConfig struct {
	HistorySize  int
	TrackHistory bool
}

// New returns an instance of gohz.Throttler
// built with the specified configuration.
//
// A non-nil error is returned in case of invalid configuration.
// Note that rates are not part of the configuration: each call site
// (or each Bind call) carries its own.
func New(config *Config) (Throttler, error) {
	if config == nil {
		config = &Config{}
	}

	parsedConfig, err := validateConfiguration(config)
	if err != nil {
		return nil, err
	}

	effectiveClock := config.Clock
	if effectiveClock == nil {
		effectiveClock = defaultClock
	}

	effectiveSink := config.Sink
	if effectiveSink == nil {
		effectiveSink = NewDefaultSink()
	}

	out := throttlerDefaultImpl{
		Config: parsedConfig,
		Clock:  effectiveClock,
		Registry: gateRegistry{
			clock: effectiveClock,
		},
		sink: effectiveSink,
	}

	if parsedConfig.TrackHistory {
		out.HistoryData = newAdmissionHistory(parsedConfig.HistorySize)
	}

	return &out, nil
}

// validateConfiguration will parse the user-provided configuration
// to the required format for runtime while also validating it.
func validateConfiguration(config *Config) (*throttlerEffectiveConfig, error) {
	out := throttlerEffectiveConfig{}

	if config.HistorySize < 0 {
		return nil, &InvalidConfig{
			Field:  "HistorySize",
			Reason: "should be zero to disable history or a positive capacity",
		}
	}

	if config.HistorySize > 0 {
		out.HistorySize = config.HistorySize
		out.TrackHistory = true
	}

	return &out, nil
}
