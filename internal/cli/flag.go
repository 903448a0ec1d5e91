package cli

import "time"

type Flags struct {
	BackendURL string
	Token      string
	Timeout    time.Duration
	Verbose    bool

	Hub         string
	Date        string
	Consignment string
	Action      string

	Sender         string
	SenderEmail    string
	Recipient      string
	RecipientEmail string
	Origin         string
	Destination    string
}

var flagMap = FlagMap{
	BackendURL: FlagSet[string]{
		Name:  "backend-url",
		Usage: "Base URL of the logistics backend. Empty uses built-in demo data.",
		Value: "",
	},
	Token: FlagSet[string]{
		Name:  "token",
		Usage: "Bearer token sent to the backend.",
		Value: "",
	},
	Timeout: FlagSet[time.Duration]{
		Name:  "timeout",
		Usage: "Per-request backend timeout.",
		Value: 10 * time.Second,
	},
	Verbose: FlagSet[bool]{
		Name:  "verbose",
		Usage: "Log backend calls to stderr.",
		Value: false,
	},
	Hub: FlagSet[string]{
		Name:  "hub",
		Usage: "Hub name.",
		Value: "",
	},
	Date: FlagSet[string]{
		Name:  "date",
		Usage: "Trip date: today, tomorrow or YYYY-MM-DD.",
		Value: "today",
	},
	Consignment: FlagSet[string]{
		Name:  "consignment",
		Usage: "Consignment ID.",
		Value: "",
	},
	Action: FlagSet[string]{
		Name:  "action",
		Usage: "ARRIVAL or DEPARTURE.",
		Value: "",
	},
}

type FlagSet[T any] struct {
	Name  string
	Usage string
	Value T
}

type FlagMap struct {
	BackendURL  FlagSet[string]
	Token       FlagSet[string]
	Timeout     FlagSet[time.Duration]
	Verbose     FlagSet[bool]
	Hub         FlagSet[string]
	Date        FlagSet[string]
	Consignment FlagSet[string]
	Action      FlagSet[string]
}
