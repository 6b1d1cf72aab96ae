// Package veevavault provides a Go client SDK for the Veeva Vault
// document-management REST API.
//
// A client is created by authenticating; the resulting session token
// and base host live on the client and are sent with every call:
//
//	client, err := veevavault.Authenticate(ctx, veevavault.Credentials{
//	    Host:     "https://myvault.veevavault.com/api/v13.0",
//	    Username: "user@example.com",
//	    Password: "secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := client.GetDocument(ctx, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Name:", doc.Name())
//
// Binder membership is order-sensitive: the service accepts one
// membership mutation per call and encodes position in an explicit
// field, so SetBinderDocuments and RemoveBinderDocuments issue strictly
// sequential calls and report partial failure via *SequenceError.
package veevavault
