package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	m "suitegate.dev/pkg/suitegate/internal/model"
	"suitegate.dev/pkg/suitegate/pkg"
)

var structValidate = validator.New(validator.WithRequiredStructEnabled())

// ValidateSnapshot checks a snapshot for structural problems and duplicate
// identifiers. Every problem is reported in a single *model.DataError.
func ValidateSnapshot(snapshot m.Snapshot) error {
	problems := snapshotProblems(snapshot)
	if err := problems.ErrorOrNil(); err != nil {
		return m.NewDataError(snapshot.Suite, err)
	}

	return nil
}

// ValidatePolicy rejects policies the count judge cannot apply.
func ValidatePolicy(policy m.TolerancePolicy) error {
	if err := structValidate.Struct(policy); err != nil {
		return m.NewDataError("", fmt.Errorf("invalid tolerance policy: %w", flattenValidation(err)))
	}

	return nil
}

func snapshotProblems(snapshot m.Snapshot) *multierror.Error {
	var problems *multierror.Error

	if err := structValidate.Struct(snapshot); err != nil {
		problems = multierror.Append(problems, flattenValidation(err))
	}

	for _, dup := range pkg.Duplicates(snapshot.IDs()) {
		problems = multierror.Append(problems, fmt.Errorf("duplicate test id %q", dup))
	}

	return problems
}

// flattenValidation turns validator field errors into one error per field.
func flattenValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var result *multierror.Error

	for _, fieldErr := range fieldErrs {
		result = multierror.Append(result, fmt.Errorf("field %s failed %q check (value %v)",
			fieldErr.Namespace(), fieldErr.Tag(), fieldErr.Value()))
	}

	return result.ErrorOrNil()
}
