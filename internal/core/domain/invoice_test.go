package domain

import "testing"

func TestParseInvoiceStatus(t *testing.T) {
	cases := []struct {
		in   string
		want InvoiceStatus
	}{
		{"Paid", StatusPaid},
		{"paid", StatusPaid},
		{"  UNPAID ", StatusUnpaid},
		{"Queued", StatusQueued},
		{"on hold", StatusOnHold},
		{"On   Hold", StatusOnHold},
		{"REJECTED", StatusRejected},
		{"not found", StatusNotFound},
	}
	for _, tc := range cases {
		got, err := ParseInvoiceStatus(tc.in)
		if err != nil {
			t.Fatalf("ParseInvoiceStatus(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseInvoiceStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseInvoiceStatusRejectsUnknownValues(t *testing.T) {
	for _, in := range []string{"", "settled", "PAID IN FULL", "cancelled"} {
		if _, err := ParseInvoiceStatus(in); err == nil {
			t.Fatalf("ParseInvoiceStatus(%q) should fail", in)
		}
	}
}

func TestNotFoundRecordEchoesInvoiceNumber(t *testing.T) {
	record := NotFoundRecord("INV-99999")
	if record.Status != StatusNotFound {
		t.Fatalf("expected Not Found, got %q", record.Status)
	}
	if record.SupplierInvoiceNo != "INV-99999" {
		t.Fatalf("expected echoed number, got %q", record.SupplierInvoiceNo)
	}
}

func TestKindFromPath(t *testing.T) {
	cases := []struct {
		path string
		kind DocumentKind
		ok   bool
	}{
		{"inbox/acme/inquiry.pdf", KindPDF, true},
		{"inbox/acme/INQUIRY.PDF", KindPDF, true},
		{"inbox/beta/statement.html", KindHTML, true},
		{"inbox/beta/page.htm", KindHTML, true},
		{"inbox/beta/logo.png", "", false},
		{"inbox/beta/noextension", "", false},
	}
	for _, tc := range cases {
		kind, ok := KindFromPath(tc.path)
		if kind != tc.kind || ok != tc.ok {
			t.Fatalf("KindFromPath(%q) = %q, %v; want %q, %v", tc.path, kind, ok, tc.kind, tc.ok)
		}
	}
}
