// Package codes maps the gateway's numeric result codes to their fixed
// messages. The table is reference data taken verbatim from the gateway
// documentation: the two disjoint ranges (1-95 and 201-239), the gaps and
// the duplicated texts are all intentional and must stay exactly as they
// are, since client code and support documentation reference codes by
// exact number.
package codes

import "fmt"

// OK is the result code of a successful command.
const OK = 100

// GatewayError is a non-success result returned by the gateway, distinct
// from any transport-level failure.
type GatewayError struct {
	// Code is the raw numeric result code.
	Code int
	// Message is the fixed taxonomy text for known codes, or the
	// gateway-supplied text for unknown ones.
	Message string
	// Known reports whether Code is in the documented taxonomy.
	Known bool
}

func (e *GatewayError) Error() string {
	if e.Known {
		return fmt.Sprintf("pixelletter error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("pixelletter unknown error code %d: %s", e.Code, e.Message)
}

// Message returns the fixed text for a documented result code.
func Message(code int) (string, bool) {
	msg, ok := messages[code]
	return msg, ok
}

// FromResult classifies a decoded result. Code OK yields nil; any other
// code yields a GatewayError, falling back to the raw code and the
// gateway's own text when the code is outside the documented table.
func FromResult(code int, msg string) *GatewayError {
	if code == OK {
		return nil
	}
	if fixed, ok := messages[code]; ok {
		return &GatewayError{Code: code, Message: fixed, Known: true}
	}
	return &GatewayError{Code: code, Message: msg}
}

var messages = map[int]string{
	1:  "Die Datei konnte nicht erzeugt werden. Bitte versuchen Sie es noch einmal.",
	2:  "Unbekannter Fehler. Bitte versuchen Sie es noch einmal.",
	3:  "Unbekannter Fehler. Bitte versuchen Sie es noch einmal.",
	4:  "Die angegebene e-mail-Adresse oder das Passwort sind nicht korrekt.",
	5:  "Unberechtigter Seiten-Aufruf. Bitte beginnen Sie von vorne.",
	6:  "Dieser Auftrag wurde bereits erteilt.",
	7:  "Ihr Account ist gesperrt. Bitte wenden Sie sich an uns.",
	8:  "Es wurden keine korrekten XML-Daten übermittelt.",
	9:  "Es wurde kein Wert im Feld type angeben. Bitte wählen Sie zwischen den Values text oder upload.",
	10: "Der Datei-Typ ist nicht korrekt. Uploads sind nur mit korrekter Datei-Endung möglich.",
	11: "Die Konvertierung des Dokuments ist fehlgeschlagen, bitte versuchen Sie es mit einer anderen Datei-Endung.",
	12: "Die Datei konnte nicht übertragen werden.",
	13: "Bitte bestätigen Sie die Allgemeinen Geschäftsbedingungen mit \"ja\".",
	14: "Bitte geben Sie an, ob Sie auf das Widerrufsrecht verzichten möchten.",
	15: "Es wurde keine Adresse für den Empfänger angegeben oder es wurde kein Dateianhang mitgesendet.",
	16: "Es wurde kein Text für den Briefinhalt angegeben.",
	17: "Sind Sie sicher, dass Sie vom Widerrufsrecht gebrauch machen möchten? Dies führt zu einer Verzögerung von 2 Wochen beim Versand Ihres Auftrags. Bitte treffen Sie eine Auswahl und klicken Sie erneut auf den Bestellknopf.",
	18: "Es wurde eine Faxzustellung gewünscht, aber keine gültige Faxnummer angegeben.",
	19: "Es wurde keine action definiert. Bitte geben Sie 1 (für Briefversand), 2 (für Fax-Versand) oder 3 (für Brief- und Faxversand) an.",
	20: "Die Datei darf max. 50 MB groß sein.",
	21: "Ihr Guthaben reicht nicht aus. Bitte loggen Sie sich im Kundenbereich ein und laden Sie Ihr Guthaben auf.",
	22: "Falsche Angabe von Zusatzleistungen.",
	23: "Die gewählte Zusatzleistung ist bis zum 14.03.2009 nicht verfügbar.",
	24: "Der Versandort München ist bis zum 04.09.2006 nicht verfügbar.",
	25: "Kein oder ein falsches Empfängerland angegeben. Diese Angabe ist obligatorisch. Im e-mail-Template geben Sie bitte die Zeile # destination: DE bzw. das entsprechende Länderkürzel ein. Wenn Sie die HTTPS-Schnittstelle nutzen finden Sie Infos in der aktuellen Doku.",
	26: "Die ausgewählte Zusatzleistung kann in das gewählte Empfängerland nicht versendet werden. Bitte wählen Sie, sofern zutreffend, Deutschland als Zielland aus.",
	27: "Die ausgewählte Zusatzleistung kann über das gewählte Briefzentrum nicht versendet werden. Bitte wählen Sie München als Versandort aus.",
	28: "Die ausgewählte Zusatzleistung kann über das gewählte Briefzentrum nicht versendet werden. Bitte wählen Sie Hausleiten/Wien als Versandort aus.",
	29: "Die ausgewählte Zusatzleistung kann in das gewählte Empfängerland nicht versendet werden. Bitte wählen Sie ein Zielland innerhalb Europas aus.",
	30: "Der angegebene Name des Begünstigten ist fehlerhaft. Geben Sie mind. 1 und max. 27 Zeichen an und verwenden Sie nur diese Zeichen 0-9 A-Z äöüß.,&-/+*$% und Leerzeichen.",
	31: "Der angegebene Name der Bank des Begünstigten ist fehlerhaft. Geben Sie mind. 1 und max. 27 Zeichen an und verwenden Sie nur diese Zeichen 0-9 A-Z äöüß.,&-/+*$% und Leerzeichen.",
	32: "Die erste Zeile des angegebenen Verwendungszwecks ist fehlerhaft. Geben Sie mind. 0 und max. 27 Zeichen an und verwenden Sie nur diese Zeichen 0-9 A-Z äöüß.,&-/+*$% und Leerzeichen.",
	33: "Die zweite Zeile des angegebenen Verwendungszwecks ist fehlerhaft. Geben Sie mind. 1 und max. 27 Zeichen an und verwenden Sie nur diese Zeichen 0-9 A-Z äöüß.,&-/+*$% und Leerzeichen.",
	34: "Der angegebene Betrag der Nachnahme ist fehlerhaft. Geben Sie den Betrag ohne tausender Trennzeichen im Format XXXX,XX an.",
	35: "Der angegebene Betrag der Nachnahme ist zu hoch oder zu niedrig. Geben Sie einen Euro-Betrag von min. 3,00 EUR und max. 1600,00 EUR an.",
	36: "Die angegebene Kontonummer des Begünstigten ist fehlerhaft. Geben Sie zwischen 6 und 10 Ziffern an.",
	37: "Die angegebene Bankleitzahl des Begünstigten ist fehlerhaft. Geben Sie genau 8 Ziffern an.",
	38: "Farbdrucke können derzeit nicht über das ausgewählt Briefzentrum verschickt werden. Bitte wählen Sie ein anderes Briefzentrum.",
	39: "Es wurde keine e-mailadresse für den Absender der Signaturbenachrichtung an den Kunden definiert.",
	40: "Die Länge der e-mailadresse für den Absender der Signaturbenachrichtung an den Kunden ist zu groß. Maximal können 255 Zeichen angeben werden.",
	41: "Es wurde keine e-mailadresse für den Empfänger der Signaturbenachrichtung an den Kunden definiert.",
	42: "Die Länge der e-mailadresse für den Empfänger der Signaturbenachrichtung an den Kunden ist zu groß. Maximal können 255 Zeichen angeben werden.",
	43: "Es wurde kein e-mail-Betreff für die Signaturbenachrichtung definiert.",
	44: "Der Betreff der e-mail für die Signaturbenachrichtung ist zu lang.  Maximal können 255 Zeichen angeben werden.",
	45: "Es wurde kein e-mail-Text für die Signaturbenachrichtung definiert.",
	46: "Um elektronische Signaturen zu beauftragen, müssen Sie sich einmalig kostenfrei im Kundenbereich unter dem Menüpunkt \"Elektr. Signaturen\" freischalten.",
	47: "Die PDF-Datei ist verschlüsselt. Bitte laden Sie eine unverschlüsselte PDF-Datei hoch die keine Bearbeitungseinschränkungen beinhaltet.",
	48: "Die verwendete Transaction-ID wurde bereits verwendet. (Spezielle Kundeneinstellung)",
	49: "Für den Auftrag zur digitalen Signatur wurde keine Datei übermittelt.",
	50: "In der PDF-Datei wurde kein Zeiger auf die xref-Tabelle gefunden.",
	51: "Es wurde kein Upload-Template mit dieser Nummer gefunden.",
	52: "Beim Wert Template wurde keine Template-Nummer definiert.",
	53: "Derzeit sind aus technischen Gründen nur Uploads von PDF-Dateien möglich.",
	54: "Es ist ein Fehler bei der PGP-Entschlüsselung aufgetreten.",
	55: "Der Auftrag kann nicht gefunden werden.",
	56: "Die Nummerierung der Bulkaufträge ist nicht fortlaufend.",
	57: "Bulkaufträge können nur mit dem type-Wert template übermittelt werden.",
	58: "Es wurde eine für Bulkaufträge ungültige action angegben. Die action muss 5 sein.",
	59: "Die Angabe von Werten für den Tag control ist bei Bulkaufträge nicht möglich.",
	60: "Die Angabe von Werten für den Tag addoption ist bei Bulkaufträge nicht möglich.",
	61: "Die Angabe location muss bei Bulkaufträge immer 1 sein.",
	62: "Es wurde ein ungültiger Ländercode als Zielland (destination) angeben.",
	63: "Es wurde eine ungültige Nr für die Absenderzeile (sendernr) angeben.",
	64: "Es wurde eine ungültige Angabe für das Geschlecht (gender) angeben.",
	65: "Es wurde kein Vornamen angeben.",
	66: "Es wurde kein Nachname angeben.",
	67: "Es wurde keine Strasse angeben.",
	68: "Es wurde keine Postleitzahl angeben.",
	69: "Es wurde keine gültige Postleitzahl angeben.",
	70: "Es wurde kein Ort angeben.",
	71: "Der Auftrag konnte nicht in die Datenbank geschrieben werden.",
	72: "Das Foto muss im JPG-Format übermittelt werden.",
	73: "Die Anschrift bei Postkarten darf max. 6 Zeilen haben.",
	74: "Der Text für diese Postkarte ist zu lang.",
	75: "Das Foto darf nicht größer als 6 MB sein.",
	76: "Es wurde kein Foto übermittelt.",
	77: "Der Gutscheincode ist ungültig.",
	78: "Die angegebene URL ist ungültig.",
	79: "Die Unterstützung von Cookies ist deaktiviert. Bitte aktivieren Sie diese über die Einstellungen in Ihrem Browser.",
	80: "Der Gutscheincode ist nicht für diese Dienstleistung einlösbar.",
	81: "Die Session ist abgelaufen, bitte loggen Sie sich erneut ein.",
	82: "Die gewählte Dienstleistung kann nicht mehr angeboten werden.",
	83: "Bitte geben Sie mindestens einen Betrag von 5,00 EUR ein.",
	84: "Bitte geben Sie mindestens einen Betrag von 10,00 EUR ein.",
	85: "Bitte geben Sie mindestens einen Betrag von 25,00 EUR ein.",
	86: "Bitte geben Sie mindestens einen Betrag von 1,00 EUR ein.",
	87: "Bitte geben Sie einen gültigen Betrag (z.B. 10,00) ein.",
	88: "Um Premiumadress nutzen zu können, müssen Sie einen Premiumadress-Zugang bei der Post haben und unser Support muss diesen für Sie in den Kundeneinstellungen hinterlegt haben.",
	89: "Allgemeiner Fehler bei der PDF-Verarbeitung.",
	90: "Es können nur maximal 1000,00 EUR aufgeladen werden. Bitte nutzen Sie alternativ z.B. eine Banküberweisung.",
	91: "Ihre e-mailadresse war nicht erreichbar und wurde deshalb deaktiviert. Für weitere Instruktionen loggen Sie sich bitte im Kundenbereich ein.",
	92: "Das von Ihnen gesetzte Transaktions-Limit wurde erreicht. Bitte kontaktieren Sie ggf. den Support.",
	93: "Die PDF-Datei ist defekt.",
	94: "Bitte geben Sie mindestens einen Betrag von 0,01 EUR ein.",
	95: "Sie haben Ihre e-mailadresse noch nicht bestätigt. Bitte klicken Sie auf den Link unserer e-mail. Anschliessend können Sie sich an dieser Stelle anmelden.",

	201: "Bitte wählen Sie Ihr Geschlecht (Herr/Frau) aus.",
	202: "Es wurde kein Vornamen angeben.",
	203: "Es wurde kein Nachname angeben.",
	204: "Es wurde keine Strasse angeben.",
	205: "Es wurde keine gültige Strasse angeben. Bitte verwenden Sie keine Postfach-Anschriften.",
	206: "Es wurde keine Postleitzahl (PLZ) angeben.",
	207: "Die PLZ ist nicht korrekt. Für eine Anschrift in Deutschland müssen Sie eine 5-stellige Postleitzahl angeben.",
	208: "Die PLZ ist nicht korrekt. Für eine Anschrift in Österreich oder der Schweiz müssen Sie eine 4-stellige Postleitzahl angeben.",
	209: "Es wurde kein Ort angeben.",
	210: "Es wurde keine gültige Vorwahl für die Telefonnummer angeben.",
	211: "Es wurde keine gültige Durchwahl für die Telefonnummer angeben.",
	212: "Es wurde keine gültige Vorwahl für die Faxnummer angeben. Falls Sie kein Fax besitzen lassen Sie das Feld komplett leer.",
	213: "Es wurde keine gültige Durchwahl für die Faxnummer angeben. Falls Sie kein Fax besitzen lassen Sie das Feld komplett leer.",
	214: "Die angegebene Faxnummer ist nicht vollständig. Falls Sie kein Fax besitzen lassen Sie bitte das Vorwahl- und Durchwahl-Feld komplett leer.",
	215: "Es wurde keine gültige Vorwahl für die Handynummer angeben. Falls Sie kein Handy besitzen lassen Sie das Feld komplett leer.",
	216: "Es wurde keine gültige Durchwahl für die Handynummer angeben. Falls Sie kein Handy besitzen lassen Sie das Feld komplett leer.",
	217: "Die angegebene Handynummer ist nicht vollständig. Bitte geben Sie eine Vorwahl ein.",
	218: "Es wurde keine e-mail-Adresse angeben.",
	219: "Es wurde keine gültige e-mail-Adresse angeben.",
	220: "Es wurde keine gültige e-mail-Adresse für den Rechnungsempfänger angeben.",
	221: "Es wurde keine gültige e-mail-Adresse für die Statusbenachrichtungen angeben.",
	222: "Es existiert bereits ein Kunde mit dieser e-mailadresse",
	223: "Es ist ein Fehler aufgetreten. Bitte beginnen Sie erneut von der Startseite",
	224: "Es wurden keine zu bestellenden Dokumente gefunden. Bitte beginnen Sie erneut von der Startseite",
	225: "Es wurde keine Änderung durchgeführt, da alle geänderten Daten mit denen identisch sind, die wir gespeichert haben.",
	226: "Es wurde keine Änderung durchgeführt, da dieser Account lediglich ein Demo-Account ist.",
	227: "Die angegebene Bankverbindung (Kontonummer und BLZ) ist nicht korrekt.",
	228: "Die angegebene Bankverbindung (Kontonummer und BLZ) ist nicht korrekt. Sie haben wahrscheinlich die Felder vertauscht. Ändern Sie das und versuchen Sie es erneut.",
	229: "Es wurde keine Zahlungsart ausgewählt. Bitte klicken Sie Bankeinzug oder Guthaben an.",
	230: "Es wurde keine Kontonummer angegeben.",
	231: "Es wurde keine Bankleitzahl (BLZ) angegeben.",
	232: "Es wurde kein Konto-Inhaber für die Bankverbindung angegeben.",
	233: "Sie müssen die AGB akzeptieren, um sich als Neukunde anmelden zu können.",
	234: "Es wurde kein Land angeben.",
	235: "Es wurde kein gültiger Ländercode angeben.",
	236: "Es wurde kein gültiges Geburtsdatum angeben.",
	237: "Bitte geben Sie als Titel nicht Herr/Frau oder ähnliches an, sondern nur Titel wie Prof. Dr.",
	238: "Ihr Account weist zu viele fehlgeschlagene Faxe auf und wurde für den Faxversand gesperrt. Bitte wenden Sie sich ggf. an unseren Support.",
	239: "Es ist ein unbekannter Fehler aufgetreten.",
}
