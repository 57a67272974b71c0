package gcode

import "strconv"

// ParamValue returns the numeric part of a <Letter><number> token.
//
// The letter is not checked; motion parameters are positional.
func ParamValue(tok string) (float64, error) {
	_, v, err := DecodeParam(tok)
	return v, err
}

// DecodeParam splits a <Letter><number> token into its letter and value.
func DecodeParam(tok string) (byte, float64, error) {
	if len(tok) < 2 {
		return 0, 0, &MalformedParameterError{Token: tok}
	}
	v, err := strconv.ParseFloat(tok[1:], 64)
	if err != nil {
		return 0, 0, &MalformedParameterError{Token: tok}
	}
	return tok[0], v, nil
}
