// Package loksabha provides an embeddable Go client for the Lok Sabha
// election dataset, backed by Valkey, Redis (search + JSON modules) or MongoDB.
//
// The client answers the same queries as the HTTP service without running it:
//
//	client, err := loksabha.New(ctx, loksabha.WithValkey("localhost:6379", ""))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	winners, _ := client.Winners(ctx, loksabha.Filter{Year: 2019, StateName: "Kerala"})
//	agg, _ := client.WinnerAggregate(ctx, loksabha.Filter{Year: 2019}, true)
//	for _, s := range agg.Slices {
//	    fmt.Println(s.PartyName, s.Seat)
//	}
//
// Datasets are loaded with Import, usually through the loksabha-load command.
package loksabha
