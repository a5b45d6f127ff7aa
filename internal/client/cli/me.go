package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/accountd/internal/common"
)

// Me fetches and prints the profile of the currently authenticated user.
// An expired or revoked token clears the local session so the user is
// prompted to log in again.
func (a *App) Me(ctx context.Context) error {

	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	profile, err := a.api.Me(ctx, a.token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			log.Printf("Session expired, please log in again")
			a.token = ""
			a.userName = ""
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Username: %s\n", profile.Username)
	fmt.Printf("Email:    %s\n", profile.Email)
	if profile.FullName != nil {
		fmt.Printf("Name:     %s\n", *profile.FullName)
	}

	return nil
}
