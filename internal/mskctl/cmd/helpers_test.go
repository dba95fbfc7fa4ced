package cmd_test

import "errors"

func errorsAs(err error, target interface{}) bool {
	return err != nil && errors.As(err, target)
}

func errorsIs(err, target error) bool {
	return err != nil && errors.Is(err, target)
}
