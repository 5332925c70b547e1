// Package tcaclient creates clients for The Companies API.
//
// Basic usage:
//
//	client, err := tcaclient.New(&tca.Config{
//		APIToken: os.Getenv("TCA_API_TOKEN"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Companies().Search(ctx, map[string]interface{}{
//		"search": "openai",
//		"size":   5,
//	})
package tcaclient
