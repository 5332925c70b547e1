// Package tca provides the public types for The Companies API Go client.
//
// The package defines the client configuration, the operations table the
// dispatcher consumes, query parameter serialization, response types, and the
// error surface. Construct clients with the tcaclient package:
//
//	client, err := tcaclient.New(&tca.Config{APIToken: token})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Companies().Search(ctx, map[string]interface{}{"size": 5})
//
// Every API call can also be issued dynamically by operation name:
//
//	raw, err := client.Invoke(ctx, "fetchCompany", map[string]interface{}{
//		"domain": "openai.com",
//	})
package tca
