// Package builder defines shared constants used by the series builders,
// ensuring consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPulse is the canonical name for the Pulse constructor.
	MethodPulse = "Pulse"
	// MethodChirp is the canonical name for the Chirp constructor.
	MethodChirp = "Chirp"
	// MethodOHLC is the canonical name for the OHLC constructor.
	MethodOHLC = "OHLC"
	// MethodDiscrete is the canonical name for the incremental Discrete builder.
	MethodDiscrete = "Discrete"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinSequenceLen is the minimum number of samples for Pulse and Chirp.
	MinSequenceLen = 1
	// MinOHLCDays is the minimum number of trading days for OHLC.
	MinOHLCDays = 1
)
