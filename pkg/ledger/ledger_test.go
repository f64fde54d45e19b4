package ledger_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-monitor/pkg/ledger"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcHandler func(params []json.RawMessage) (interface{}, error)

func newRPCServer(t *testing.T, handlers map[string]rpcHandler) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		h, ok := handlers[req.Method]
		if !ok {
			resp["error"] = map[string]interface{}{"code": -32601, "message": "method not found"}
		} else if result, err := h(req.Params); err != nil {
			resp["error"] = map[string]interface{}{"code": -32000, "message": err.Error()}
		} else {
			resp["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func testPublicKey() []byte {
	pub := make([]byte, 32)
	for i := range pub {
		pub[i] = byte(i + 1)
	}
	return pub
}

func accountInfo(free *big.Int) []byte {
	info := make([]byte, 80)
	be := free.Bytes()
	for i := range be {
		info[16+i] = be[len(be)-1-i]
	}
	return info
}

func TestNewConnector(t *testing.T) {
	tests := []struct {
		name   string
		kind   ledger.Kind
		expect func(*testing.T, ledger.Connector, error)
	}{
		{
			name: "should return substrate connector",
			kind: ledger.KindSubstrate,
			expect: func(t *testing.T, c ledger.Connector, err error) {
				assert.NotNil(t, c)
				assert.NoError(t, err)
			},
		},
		{
			name: "should return evm connector",
			kind: ledger.KindEVM,
			expect: func(t *testing.T, c ledger.Connector, err error) {
				assert.NotNil(t, c)
				assert.NoError(t, err)
			},
		},
		{
			name: "should reject unknown kind",
			kind: "bitcoin",
			expect: func(t *testing.T, c ledger.Connector, err error) {
				assert.Nil(t, c)
				assert.EqualError(t, err, `[ledger] invalid ledger kind "bitcoin"`)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ledger.NewConnector(tc.kind)
			tc.expect(t, c, err)
		})
	}
}

func TestSubstrateQueryBalance(t *testing.T) {
	pub := testPublicKey()
	address, err := ledger.EncodeSS58(42, pub)
	require.NoError(t, err)

	free, _ := new(big.Int).SetString("1500000000000000000", 10)

	srv := newRPCServer(t, map[string]rpcHandler{
		"system_chain": func([]json.RawMessage) (interface{}, error) { return "Autonomys", nil },
		"state_getStorage": func(params []json.RawMessage) (interface{}, error) {
			var key string
			require.NoError(t, json.Unmarshal(params[0], &key))
			assert.Equal(t, ledger.AccountStorageKey(pub), key)
			return hexutil.Encode(accountInfo(free)), nil
		},
	})

	connector, err := ledger.NewConnector(ledger.KindSubstrate)
	require.NoError(t, err)

	client, err := connector.Connect(context.Background(), srv.URL)
	require.NoError(t, err)
	defer client.Close()

	got, err := client.QueryBalance(context.Background(), address)
	require.NoError(t, err)
	assert.Equal(t, 0, free.Cmp(got))
}

func TestSubstrateQueryBalance_MissingAccountIsZero(t *testing.T) {
	address, err := ledger.EncodeSS58(42, testPublicKey())
	require.NoError(t, err)

	srv := newRPCServer(t, map[string]rpcHandler{
		"system_chain":     func([]json.RawMessage) (interface{}, error) { return "Autonomys", nil },
		"state_getStorage": func([]json.RawMessage) (interface{}, error) { return nil, nil },
	})

	connector, _ := ledger.NewConnector(ledger.KindSubstrate)
	client, err := connector.Connect(context.Background(), srv.URL)
	require.NoError(t, err)
	defer client.Close()

	got, err := client.QueryBalance(context.Background(), address)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Int64())
}

func TestSubstrateQueryBalance_Errors(t *testing.T) {
	address, err := ledger.EncodeSS58(42, testPublicKey())
	require.NoError(t, err)

	srv := newRPCServer(t, map[string]rpcHandler{
		"system_chain": func([]json.RawMessage) (interface{}, error) { return "Autonomys", nil },
		"state_getStorage": func([]json.RawMessage) (interface{}, error) {
			return nil, assert.AnError
		},
	})

	connector, _ := ledger.NewConnector(ledger.KindSubstrate)
	client, err := connector.Connect(context.Background(), srv.URL)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.QueryBalance(context.Background(), address)
	assert.ErrorIs(t, err, ledger.ErrQuery)

	_, err = client.QueryBalance(context.Background(), "not-an-address")
	assert.ErrorIs(t, err, ledger.ErrQuery)
}

func TestEVMQueryBalance(t *testing.T) {
	address := "0x81F37cc0EcAE1dD1c89D79A98f857563873cFA76"

	srv := newRPCServer(t, map[string]rpcHandler{
		"eth_chainId": func([]json.RawMessage) (interface{}, error) { return "0x1", nil },
		"eth_getBalance": func(params []json.RawMessage) (interface{}, error) {
			var got string
			require.NoError(t, json.Unmarshal(params[0], &got))
			assert.True(t, strings.EqualFold(address, got))
			return "0xde0b6b3a7640000", nil
		},
	})

	connector, err := ledger.NewConnector(ledger.KindEVM)
	require.NoError(t, err)

	client, err := connector.Connect(context.Background(), srv.URL)
	require.NoError(t, err)
	defer client.Close()

	got, err := client.QueryBalance(context.Background(), address)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", got.String())
}

func TestConnect_UnreachableNode(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	for _, kind := range []ledger.Kind{ledger.KindSubstrate, ledger.KindEVM} {
		t.Run(string(kind), func(t *testing.T) {
			connector, _ := ledger.NewConnector(kind)
			client, err := connector.Connect(context.Background(), url)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, ledger.ErrConnection)
		})
	}
}

func TestConnect_InvalidURL(t *testing.T) {
	connector, _ := ledger.NewConnector(ledger.KindSubstrate)
	_, err := connector.Connect(context.Background(), "ftp://node")
	assert.ErrorIs(t, err, ledger.ErrConnection)
}
