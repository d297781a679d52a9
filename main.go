package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-pixelletter-client/pixelletter"
	"github.com/alapierre/go-pixelletter-client/pixelletter/model"
	"github.com/alapierre/go-pixelletter-client/pixelletter/util"
	"github.com/biter777/countries"
)

func main() {

	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	email := util.GetEnvOrFailed("PIXELLETTER_EMAIL")
	password := util.GetEnvOrFailed("PIXELLETTER_PASSWORD")

	client := pixelletter.New(pixelletter.Config{
		Email:           email,
		Password:        password,
		AcceptTerms:     true,
		WaiveWithdrawal: true,
		TestMode:        true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	account, err := client.AccountInfo(ctx, pixelletter.InfoCredit)
	if err != nil {
		panic(err)
	}
	if account.Credit != nil {
		fmt.Printf("credit: %s %s\n", account.Credit.Amount, account.Credit.Currency)
	}

	msg, err := client.SubmitOrder(ctx, pixelletter.OrderRequest{
		Letter: &pixelletter.Letter{
			Destination: countries.Germany,
			Services:    []model.AddOption{model.AddOptionGreen},
		},
		Text: &pixelletter.Text{
			Address:       "Erika Mustermann\nHeidestraße 17\n51147 Köln",
			Message:       "Guten Tag,\n\ndies ist ein Testbrief.\n\nMit freundlichen Grüßen",
			Font:          "Courier",
			ReturnAddress: "Max Mustermann, Musterweg 1, 12345 Musterstadt",
		},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(msg)
}
