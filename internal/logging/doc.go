// Package logging builds the zap logger used for diagnostics.
//
// Standard output belongs to the calculator UI, so logs only ever go to
// stderr (verbose mode) or to a file:
//
//	logger, err := logging.New(logging.Config{Path: "/tmp/magnet.log"})
//	if err != nil {
//	    // log directory could not be created
//	}
//	defer logger.Sync()
//
// With an empty Config the returned logger discards everything.
package logging
