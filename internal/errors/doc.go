// Package errors provides the single error type returned by the parsers and
// by the plumbing around them.
//
// Every failure is an *Error with a Code. Failures that come from document
// text also carry a Step naming where parsing stopped:
//   - OutOfBounds: a group or token list did not have its fixed shape. The
//     error keeps the full group and the attempted index.
//   - Parse: the text existed but did not match its grammar or lexicon. The
//     error keeps the offending text and an optional cause.
//
// Loaders and exporters fold their failures into the same type with the IO
// and Format codes.
//
// # Basic Usage
//
// Creating errors:
//
//	if len(group) != 3 {
//	    return errors.OutOfBounds(errors.StepCreatureCombat, group, 3)
//	}
//	return errors.Parsef(errors.StepCreatureSpeed, segment, "unknown label %q", label)
//
// Attaching a cause:
//
//	n, err := strconv.Atoi(field)
//	if err != nil {
//	    return errors.Parse(errors.StepCreatureArmorClass, field).WithCause(err)
//	}
//
// Wrapping keeps code, step and offending text:
//
//	if err := parseTraits(group); err != nil {
//	    return errors.Wrapf(err, "creature %q", name)
//	}
//
// # Error Checking
//
//	if errors.IsOutOfBounds(err) && errors.GetStep(err) == errors.StepCreatureCombat {
//	    // the combat group had the wrong number of lines
//	}
//
//	if errors.IsNotExpectedKind(err) {
//	    // the document is not a creature (or not a spell); skip it
//	}
//
// errors.Is matches on code, and on step too when the target names one:
//
//	errors.Is(err, &errors.Error{Code: errors.CodeParse, Step: errors.StepSpellRange})
//
// # Validation Errors
//
// Configuration structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
//	errors.ValidateRange("workers", cfg.Workers, 1, 64, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
