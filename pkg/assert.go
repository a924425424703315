package pkg

import "genperm"

func AssertNoError(err error) {
	if err != nil {
		genperm.Logger.Error().Err(err).Msg("Error occurred that should not have occurred.")
		panic(err)
	}
}
