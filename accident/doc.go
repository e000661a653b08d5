// Package accident models NHTSA FARS (Fatality Analysis Reporting System)
// accident records.
//
// # Data Source
//
// Records come from the yearly FARS accident files published by the National
// Highway Traffic Safety Administration, shipped as comma-separated tables
// named accident_<year>.csv.bz2 with a header row. Each row describes one
// reported traffic accident, including at least the STATE, MONTH, LATITUDE,
// and LONGITUD columns; the remaining columns are carried through unmodeled.
//
// # Coordinate Conventions
//
// FARS encodes an unrecorded coordinate as an out-of-range value rather than
// an empty field:
//
//	LATITUDE  > 90   →  latitude not recorded (e.g. 99.9999)
//	LONGITUD  > 900  →  longitude not recorded (e.g. 999.9999)
//
// These sentinels are valid data in the file, not errors. Conversion to an
// absent value is an explicit step, performed once by
// [Record.SanitizedCoordinates] when building a point set for plotting.
//
// # Argument Coercion
//
// Year and state-code arguments arrive as int, float, or string and are
// normalized to a plain int at the boundary by [CoerceYear] and
// [CoerceState]. Fractional numerics truncate ("2013.9" → 2013); anything
// not coercible fails with [InvalidYearError] or [InvalidStateError].
package accident
