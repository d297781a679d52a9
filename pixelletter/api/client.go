// Package api issues the multipart HTTP requests of the Pixelletter
// protocol. It knows nothing about the XML content beyond carrying it as
// the "xml" form part.
package api

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/alapierre/go-pixelletter-client/pixelletter/util"
)

// DefaultEndpoint is the production gateway URL.
const DefaultEndpoint = "https://www.pixelletter.de/xml/index.php"

// Attachment is an opaque named file to upload with an order.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Client posts one XML document plus optional attachments and returns the
// raw response body. Retries, redirects and timeouts are the caller's
// business.
type Client interface {
	PostXML(ctx context.Context, xmlBody []byte, files []Attachment) (string, error)
}

type client struct {
	rest     *resty.Client
	endpoint string
}

// New creates a client for the given endpoint. An empty endpoint selects
// the production gateway.
func New(endpoint string) Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &client{rest: resty.New(), endpoint: endpoint}
}

func (c *client) PostXML(ctx context.Context, xmlBody []byte, files []Attachment) (string, error) {

	r := c.rest.R().SetContext(ctx)
	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}

	r.SetMultipartFormData(map[string]string{"xml": string(xmlBody)})

	// Attachment parts are named uploadfile0, uploadfile1, ... in order.
	for i, f := range files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		r.SetMultipartField(fmt.Sprintf("uploadfile%d", i), f.Filename, contentType, bytes.NewReader(f.Data))
	}

	resp, err := r.Post(c.endpoint)

	printTraceInfo(c.endpoint, err, resp)

	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", &RequestError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return resp.String(), nil
}

func printTraceInfo(endpoint string, err error, resp *resty.Response) {

	if !util.HttpTraceEnabled() || resp == nil {
		return
	}

	fmt.Println("Response Info:")
	fmt.Println("  URL        :", endpoint)
	fmt.Println("  Error      :", err)
	fmt.Println("  Status Code:", resp.StatusCode())
	fmt.Println("  Status     :", resp.Status())
	fmt.Println("  Proto      :", resp.Proto())
	fmt.Println("  Time       :", resp.Time())
	fmt.Println("  Received At:", resp.ReceivedAt())
	fmt.Println("  Body       :\n", resp)
	fmt.Println()

	fmt.Println("Request Trace Info:")
	ti := resp.Request.TraceInfo()
	fmt.Println("  DNSLookup     :", ti.DNSLookup)
	fmt.Println("  ConnTime      :", ti.ConnTime)
	fmt.Println("  TCPConnTime   :", ti.TCPConnTime)
	fmt.Println("  TLSHandshake  :", ti.TLSHandshake)
	fmt.Println("  ServerTime    :", ti.ServerTime)
	fmt.Println("  ResponseTime  :", ti.ResponseTime)
	fmt.Println("  TotalTime     :", ti.TotalTime)
	fmt.Println("  IsConnReused  :", ti.IsConnReused)
	fmt.Println("  IsConnWasIdle :", ti.IsConnWasIdle)
	fmt.Println("  ConnIdleTime  :", ti.ConnIdleTime)
	fmt.Println("  RequestAttempt:", ti.RequestAttempt)
}
