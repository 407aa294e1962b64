package metrics

// Pre-defined harness metrics. They live in DefaultRegistry so the runner
// and the command line share them without passing a registry around.
var (
	// FixturesLoaded counts ssz_generic documents parsed successfully.
	FixturesLoaded = DefaultRegistry.Counter("eftest.fixtures_loaded")
	// FixtureErrors counts documents that could not be read or parsed.
	FixtureErrors = DefaultRegistry.Counter("eftest.fixture_errors")
	// CasesPassed counts vectors that matched.
	CasesPassed = DefaultRegistry.Counter("eftest.cases_passed")
	// CasesFailed counts vectors that did not match.
	CasesFailed = DefaultRegistry.Counter("eftest.cases_failed")
	// CasesSkipped counts vectors without an encoding.
	CasesSkipped = DefaultRegistry.Counter("eftest.cases_skipped")
	// ActiveWorkers tracks fixture workers currently running.
	ActiveWorkers = DefaultRegistry.Gauge("eftest.active_workers")
	// FixtureTime records per-document run time in milliseconds.
	FixtureTime = DefaultRegistry.Histogram("eftest.fixture_ms")
)
