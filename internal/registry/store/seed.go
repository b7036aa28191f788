package store

import "ujjwala/internal/registry/models"

// Seed loads the fixed identity dataset the portal runs against. In a real
// deployment this would be a feed from the identity authority; the scheme
// pilot ships with a static table.
func Seed(s *InMemory) {
	s.Load([]models.IdentityRecord{
		{
			IdentityNumber: "1234-5678-9012",
			Name:           "Rajesh Kumar",
			Income:         45000,
			Address:        "Village Rampur, District Meerut, UP",
			PhoneNumber:    "9876543210",
			Valid:          true,
		},
		{
			IdentityNumber: "2345-6789-0123",
			Name:           "Priya Sharma",
			Income:         25000,
			Address:        "Village Ganeshpur, District Ghaziabad, UP",
			PhoneNumber:    "8765432109",
			Valid:          true,
		},
		{
			IdentityNumber: "3456-7890-1234",
			Name:           "Amit Singh",
			Income:         80000,
			Address:        "Ward 5, Tehsil Noida, District Gautam Budh Nagar, UP",
			PhoneNumber:    "7654321098",
			Valid:          true,
		},
		{
			IdentityNumber: "4567-8901-2345",
			Name:           "Sunita Devi",
			Income:         0,
			Address:        "Village Bhagwanpur, District Hapur, UP",
			PhoneNumber:    "6543210987",
			Valid:          true,
		},
		{
			IdentityNumber: "5678-9012-3456",
			Name:           "Mohan Lal",
			Income:         120000,
			Address:        "Sector 15, Noida, UP",
			PhoneNumber:    "5432109876",
			Valid:          false, // income exceeds limit
		},
		{
			IdentityNumber: "6789-0123-4567",
			Name:           "Kavita Yadav",
			Income:         35000,
			Address:        "Village Khanpur, District Bulandshahr, UP",
			PhoneNumber:    "4321098765",
			Valid:          true,
		},
		{
			IdentityNumber: "7890-1234-5678",
			Name:           "Ravi Gupta",
			Income:         60000,
			Address:        "Laxmi Nagar, District Ghaziabad, UP",
			PhoneNumber:    "3210987654",
			Valid:          true,
		},
	})
}
