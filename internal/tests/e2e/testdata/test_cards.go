package testdata

// Test cards from the processor's sandbox documentation
type TestCard struct {
	Number      string
	CVV         string
	Expiry      string
	Description string
}

var (
	ValidCard = TestCard{
		Number:      "4242 4242 4242 4242",
		CVV:         "100",
		Expiry:      "12/26",
		Description: "Happy path card",
	}

	DeclinedCard = TestCard{
		Number:      "4544 2499 9999 9990",
		CVV:         "100",
		Expiry:      "12/26",
		Description: "Card the sandbox declines",
	}

	ExpiredCard = TestCard{
		Number:      "4242 4242 4242 4242",
		CVV:         "100",
		Expiry:      "05/23",
		Description: "Expiry year below the accepted minimum",
	}
)
