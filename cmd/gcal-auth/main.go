// Command gcal-auth authorizes calendar access once with an OAuth desktop
// credentials file and stores the token next to the service.
//
// Usage:
//
//	go run ./cmd/gcal-auth -credentials google-credentials.json -token token.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"reservation-agent/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	tokenPath := flag.String("token", gcalendar.DefaultTokenPath, "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	cfg, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		log.Fatalf("%v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	fmt.Println("1단계: 아래 URL을 브라우저에서 열고 Google 계정으로 로그인하세요.")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2단계: 브라우저에 표시된 인증 코드를 붙여넣고 Enter를 누르세요: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n토큰을 %s에 저장했습니다. 서비스를 재시작하면 캘린더 연동이 활성화됩니다.\n", *tokenPath)
}
