package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

type fakePDF struct {
	got *entity.Invoice
	err error
}

func (f *fakePDF) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	f.got = inv
	return []byte("%PDF-fake"), f.err
}

type fakeXML struct{}

func (fakeXML) Build(inv *entity.Invoice) ([]byte, error) {
	return []byte("<Invoice>" + inv.ID + "</Invoice>"), nil
}

func TestDownloadInvoicePDF(t *testing.T) {
	uc, repo := newUseCase()
	created, err := uc.CreateInvoice(context.Background(), sampleRequest())
	require.NoError(t, err)

	gen := &fakePDF{}
	docs := billing.NewDocumentUseCase(repo, gen, fakeXML{})

	out, filename, err := docs.DownloadInvoicePDF(context.Background(), created.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "factura_"+created.InvoiceID+".pdf", filename)
	require.NotNil(t, gen.got)
	assert.Equal(t, created.InvoiceID, gen.got.ID)
}

func TestDownloadInvoicePDF_ErrorDelGenerador(t *testing.T) {
	uc, repo := newUseCase()
	created, err := uc.CreateInvoice(context.Background(), sampleRequest())
	require.NoError(t, err)

	boom := errors.New("boom")
	docs := billing.NewDocumentUseCase(repo, &fakePDF{err: boom}, fakeXML{})
	_, _, err = docs.DownloadInvoicePDF(context.Background(), created.InvoiceID)
	assert.ErrorIs(t, err, boom)
}

func TestDownloadInvoiceXML_Digest(t *testing.T) {
	uc, repo := newUseCase()
	created, err := uc.CreateInvoice(context.Background(), sampleRequest())
	require.NoError(t, err)

	docs := billing.NewDocumentUseCase(repo, &fakePDF{}, fakeXML{})
	doc, err := docs.DownloadInvoiceXML(context.Background(), created.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, "<Invoice>"+created.InvoiceID+"</Invoice>", string(doc.Content))
	assert.Len(t, doc.Digest, 44) // base64 de 32 bytes
	assert.Equal(t, "factura_"+created.InvoiceID+".xml", doc.Filename)
}

func TestDownloadDocumentos_NoEncontrada(t *testing.T) {
	_, repo := newUseCase()
	docs := billing.NewDocumentUseCase(repo, &fakePDF{}, fakeXML{})

	_, _, err := docs.DownloadInvoicePDF(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = docs.DownloadInvoiceXML(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
