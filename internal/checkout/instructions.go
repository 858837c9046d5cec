package checkout

import "github.com/touseef7878/PRODIGY-FS-03/internal/model"

// Instructions son los pasos que ve el cliente durante el paso
// "Complete Payment", según la billetera elegida.
type Instructions struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

func PaymentInstructions(method string) *Instructions {
	switch method {
	case model.MethodJazzCash:
		return &Instructions{
			Title: "JazzCash Payment",
			Steps: []string{
				"You will receive a JazzCash request on your phone",
				"Open your JazzCash app",
				"Verify the payment amount",
				"Enter your JazzCash PIN",
				"Complete the transaction",
			},
		}
	case model.MethodEasyPaisa:
		return &Instructions{
			Title: "EasyPaisa Payment",
			Steps: []string{
				"You will receive an EasyPaisa request on your phone",
				"Open your EasyPaisa app",
				"Verify the payment amount",
				"Enter your EasyPaisa PIN",
				"Complete the transaction",
			},
		}
	}
	return nil
}
